package handlers

import (
	"net/http"

	"github.com/satheeshds/invoicing/models"
)

// GetCompany returns the company profile
// @Summary      Get company
// @Description  Get the issuer profile. Data is null until the profile is first saved.
// @Tags         company
// @Produce      json
// @Success      200  {object}  Response{data=models.Company}
// @Router       /company [get]
func GetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := DB.GetCompany(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// SaveCompany creates or updates the company profile
// @Summary      Save company
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        company  body      models.CompanyInput  true  "Company profile"
// @Success      200      {object}  Response{data=models.Company}
// @Failure      400      {object}  Response{error=string}
// @Router       /company [put]
func SaveCompany(w http.ResponseWriter, r *http.Request) {
	var input models.CompanyInput
	if !decode(w, r, &input) {
		return
	}
	c, err := DB.SaveCompany(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
