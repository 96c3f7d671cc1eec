package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"campus-cafeteria/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and validates it. Every failure is an
// invalid state so it maps to 400.
func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.InvalidStatef("invalid request body: %v", err)
	}
	return validateStruct(dst)
}

func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return domain.InvalidStatef("invalid request: %v", err)
	}

	msgs := make([]string, 0, len(valErrs))
	for _, fe := range valErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.InvalidStatef("%s", strings.Join(msgs, ", "))
}

func fieldMessage(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", f.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", f.Field(), f.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", f.Field(), f.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", f.Field(), strings.ReplaceAll(f.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", f.Field(), f.Tag())
	}
}
