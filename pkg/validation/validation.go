// Package validation implements the boundary field checks that run before any
// service call. Each check is a pure function from a candidate entity to a
// list of per-field violations; an empty list means the entity is valid.
package validation

import (
	"reflect"
	"strings"

	"github.com/blueharvest/bank/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Violation names an offending field and carries its fixed, human-readable
// rejection message.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Fixed violation messages, keyed by the entity's json field name.
var messages = map[string]Violation{
	"name":        {Field: "name", Message: "Blank or invalid name"},
	"surname":     {Field: "surname", Message: "Blank or invalid surname"},
	"address":     {Field: "address", Message: "Blank or invalid address"},
	"postcode":    {Field: "postcode", Message: "Blank or invalid postcode"},
	"credit":      {Field: "credit", Message: "Blank or invalid initial credit"},
	"customer_id": {Field: "customer", Message: "Customer cannot be null"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank rejects empty and whitespace-only strings.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCustomer checks that name, surname, address and postcode are all
// non-blank. It returns one violation per offending field, in field order.
func ValidateCustomer(c *domain.Customer) []Violation {
	return collect(validate.Struct(c))
}

// ValidateAccount checks that the account references a customer and that its
// initial credit is present and strictly positive.
func ValidateAccount(a *domain.Account) []Violation {
	return collect(validate.Struct(a))
}

func collect(err error) []Violation {
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Field: "unknown", Message: err.Error()}}
	}
	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if v, ok := messages[fe.Field()]; ok {
			violations = append(violations, v)
			continue
		}
		violations = append(violations, Violation{Field: fe.Field(), Message: "Invalid value"})
	}
	return violations
}
