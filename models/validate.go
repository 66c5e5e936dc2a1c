package models

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names so messages match what API clients send.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Range tags (gt, gte, lte) compare decimals through their float value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		l := sl.Current().Interface().(LineInput)
		checkNumeric(sl,
			numericColumn{"qty", l.Qty, 12, 3},
			numericColumn{"unit_price", l.UnitPrice, 14, 4},
			numericColumn{"discount_pct", l.DiscountPct, 5, 2},
		)
	}, LineInput{})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in := sl.Current().Interface().(InvoiceInput)
		checkNumeric(sl, numericColumn{"igi_rate", in.IGIRate, 5, 2})
	}, InvoiceInput{})
	return v
}

// numericColumn is a decimal input stored in a NUMERIC(precision, scale)
// column.
type numericColumn struct {
	field     string
	value     decimal.Decimal
	precision int32
	scale     int32
}

// checkNumeric rejects values the column would round or overflow.
func checkNumeric(sl validator.StructLevel, cols ...numericColumn) {
	for _, c := range cols {
		if !c.value.Equal(c.value.Truncate(c.scale)) {
			sl.ReportError(c.value, c.field, c.field, "scale", strconv.Itoa(int(c.scale)))
			continue
		}
		limit := decimal.New(1, c.precision-c.scale)
		if c.value.Abs().GreaterThanOrEqual(limit) {
			sl.ReportError(c.value, c.field, c.field, "lt", limit.String())
		}
	}
}

// validateStruct runs the struct tags and returns the first failure as a message.
func validateStruct(s any) string {
	if err := validate.Struct(s); err != nil {
		return validationMessage(err)
	}
	return ""
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", fe.Field(), fe.Param())
	case "scale":
		return fmt.Sprintf("%s must have at most %s decimal places", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email address"
	case "datetime":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// trimOptional trims s and returns nil for blank values.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
