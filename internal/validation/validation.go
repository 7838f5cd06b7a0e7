package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// New returns a validator that reports fields by their json name instead of
// the go struct field name, so messages line up with the wire contract.
func New() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

// NewTranslator registers the english translations with the validator to get
// clean readable generated error messages from validation actions.
func NewTranslator(validate *validator.Validate) ut.Translator {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	_ = enTranslations.RegisterDefaultTranslations(validate, translator)

	return translator
}

// FieldError is a single failed validation rule, reduced to what callers
// outside of this package need.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// TranslateError flattens a validator error into translated field errors. Errors
// that did not come from the validator are returned as is.
func TranslateError(err error, trans ut.Translator) ([]FieldError, error) {
	if err == nil {
		return nil, nil
	}

	validationErrors := validator.ValidationErrors{}

	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	errs := make([]FieldError, 0, len(validationErrors))

	for _, e := range validationErrors {
		errs = append(errs, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: e.Translate(trans),
		})
	}

	return errs, nil
}
