package form

// MissingValueMessage is reported for a required field left empty.
const MissingValueMessage = "Please fill out this field."

// FieldValidator reports the validation message for a field value. An empty
// string means the value is valid.
type FieldValidator interface {
	ValidationMessage(field FieldSpec, value string) string
}

// ValidatorFunc adapts a plain function to FieldValidator.
type ValidatorFunc func(field FieldSpec, value string) string

func (fn ValidatorFunc) ValidationMessage(field FieldSpec, value string) string {
	return fn(field, value)
}

// RequiredValidator flags required fields whose value is the empty string.
// Whitespace counts as a value.
type RequiredValidator struct{}

func (RequiredValidator) ValidationMessage(field FieldSpec, value string) string {
	if field.Required && value == "" {
		return MissingValueMessage
	}
	return ""
}
