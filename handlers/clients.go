package handlers

import (
	"net/http"

	"github.com/satheeshds/invoicing/invoicing"
	"github.com/satheeshds/invoicing/models"
)

// withEffectiveTerms fills EffectivePaymentTermsDays from the company default.
func withEffectiveTerms(r *http.Request, clients ...*models.Client) error {
	company, err := DB.GetCompany(r.Context())
	if err != nil {
		return err
	}
	for _, c := range clients {
		days := invoicing.EffectiveTermsDays(c, company)
		c.EffectivePaymentTermsDays = &days
	}
	return nil
}

// ListClients lists all clients
// @Summary      List clients
// @Description  Get active clients ordered by name, or only the soft-deleted ones.
// @Tags         clients
// @Produce      json
// @Param        deleted  query     bool  false  "List soft-deleted clients instead"
// @Success      200      {object}  Response{data=[]models.Client}
// @Router       /clients [get]
func ListClients(w http.ResponseWriter, r *http.Request) {
	deleted := r.URL.Query().Get("deleted") == "true"
	clients, err := DB.ListClients(r.Context(), deleted)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	ptrs := make([]*models.Client, len(clients))
	for i := range clients {
		ptrs[i] = &clients[i]
	}
	if err := withEffectiveTerms(r, ptrs...); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

// GetClient retrieves a single client by ID
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  Response{data=models.Client}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id} [get]
func GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	c, err := DB.GetClient(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := withEffectiveTerms(r, c); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateClient creates a new client
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      models.ClientInput  true  "Client details"
// @Success      201     {object}  Response{data=models.Client}
// @Failure      400     {object}  Response{error=string}
// @Router       /clients [post]
func CreateClient(w http.ResponseWriter, r *http.Request) {
	var input models.ClientInput
	if !decode(w, r, &input) {
		return
	}
	c, err := DB.CreateClient(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateClient updates an existing client
// @Summary      Update client
// @Description  Update a client. Issued invoices keep the name and tax ID they were issued with.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path      int                 true  "Client ID"
// @Param        client  body      models.ClientInput  true  "Client details"
// @Success      200     {object}  Response{data=models.Client}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Router       /clients/{id} [put]
func UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var input models.ClientInput
	if !decode(w, r, &input) {
		return
	}
	c, err := DB.UpdateClient(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteClient soft-deletes a client
// @Summary      Delete client
// @Description  Flag a client as deleted. It can be restored; its invoices are kept.
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  Response{data=models.Client}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id} [delete]
func DeleteClient(w http.ResponseWriter, r *http.Request) {
	setClientDeleted(w, r, true)
}

// RestoreClient undoes a soft delete
// @Summary      Restore client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  Response{data=models.Client}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id}/restore [post]
func RestoreClient(w http.ResponseWriter, r *http.Request) {
	setClientDeleted(w, r, false)
}

func setClientDeleted(w http.ResponseWriter, r *http.Request, deleted bool) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	c, err := DB.SetClientDeleted(r.Context(), id, deleted)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
