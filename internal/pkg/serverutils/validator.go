// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and flattens the failures into
// one readable error message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		messages := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			messages = append(messages, fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(messages, ", "))
	}
	return nil
}
