package playground

import (
	"github.com/pkg/errors"

	"rust-playground-client/internal/validation"
)

var (
	validate   = validation.New()
	translator = validation.NewTranslator(validate)
)

// sourceFields carries the fields every builder requires. Code is a pointer so
// that an explicitly empty program is accepted while a missing one is not.
type sourceFields struct {
	Code *string `json:"code" validate:"required"`
}

func requireCode(code string, supplied bool) error {
	fields := sourceFields{}

	if supplied {
		fields.Code = &code
	}

	fieldErrs, err := validation.TranslateError(validate.Struct(fields), translator)

	if err != nil {
		return errors.Wrap(err, "failed to validate request")
	}

	if len(fieldErrs) > 0 {
		return &MissingFieldError{Field: fieldErrs[0].Field, Message: fieldErrs[0].Message}
	}

	return nil
}
