package stock

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/bahanajar/sitta-backend/pkg/models"
)

const (
	FieldCode  = "code"
	FieldTitle = "title"
)

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

// FieldError is a single rule violation on one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

type candidateRules struct {
	Code  string `json:"code" validate:"min=4"`
	Title string `json:"title" validate:"min=5"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

var ruleMessages = map[string]string{
	FieldCode:  "code must be at least 4 characters",
	FieldTitle: "title must be at least 5 characters",
}

// validateCandidate checks every rule without stopping at the first failure.
// The returned error combines one FieldError per violation, in rule order.
func validateCandidate(candidate models.StockItem, existing []models.StockItem) error {
	var errs error

	rules := candidateRules{Code: candidate.Code, Title: candidate.Title}
	if err := validate.Struct(rules); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				errs = multierr.Append(errs, FieldError{Field: fe.Field(), Message: ruleMessages[fe.Field()]})
			}
		} else {
			errs = multierr.Append(errs, err)
		}
	}

	for _, item := range existing {
		if item.Code == candidate.Code {
			errs = multierr.Append(errs, FieldError{Field: FieldCode, Message: "code already exists"})
			break
		}
	}
	return errs
}

// toFieldErrors flattens a combined validation error. Later violations on the
// same field replace earlier ones, so a duplicate code wins over a short one.
func toFieldErrors(err error) FieldErrors {
	out := FieldErrors{}
	for _, e := range multierr.Errors(err) {
		if fe, ok := e.(FieldError); ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}
