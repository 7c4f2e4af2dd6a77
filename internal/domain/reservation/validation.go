package reservation

import (
	"errors"
	"fmt"

	"hotel-reservation/internal/pkg/errs"
)

var requiredMessages = map[Field]string{
	FieldName:     "El nombre es obligatorio.",
	FieldEmail:    "El correo electrónico es obligatorio.",
	FieldPhone:    "El teléfono es obligatorio.",
	FieldAdults:   "El número de adultos es obligatorio.",
	FieldCheckIn:  "La fecha de entrada es obligatoria.",
	FieldCheckOut: "La fecha de salida es obligatoria.",
	FieldRoomType: "Seleccione un tipo de habitación.",
}

// RequiredFields are checked for presence only; children is optional.
var RequiredFields = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldAdults,
	FieldCheckIn,
	FieldCheckOut,
	FieldRoomType,
}

type ValidationErrors map[Field]string

func (ve ValidationErrors) OK() bool {
	return len(ve) == 0
}

// Summary returns the messages in form order for the error list above the form.
func (ve ValidationErrors) Summary() []string {
	out := make([]string, 0, len(ve))
	for _, f := range Fields {
		if msg, ok := ve[f]; ok {
			out = append(out, msg)
		}
	}
	return out
}

// Validate checks presence of every required field. Content is never
// inspected: "x" is an acceptable email.
func Validate(d *Draft) ValidationErrors {
	ve := ValidationErrors{}
	for _, f := range RequiredFields {
		if d.Value(f) == "" {
			ve[f] = requiredMessages[f]
		}
	}
	return ve
}

type ValidationError struct {
	fields ValidationErrors
}

func NewValidationError(fields ValidationErrors) error {
	return errs.Mark(&ValidationError{fields: fields}, ErrMissingRequiredField)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %v", e.fields.Summary())
}

func (e *ValidationError) Fields() ValidationErrors {
	return e.fields
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
