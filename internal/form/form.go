package form

// FieldSpec describes one labeled text input of the form.
type FieldSpec struct {
	Name     string
	ID       string
	Label    string
	Required bool
	// Error is the validation message shown beneath the input, if any.
	Error string
}

// NewFieldSpec creates a required field whose ID matches its name
func NewFieldSpec(name, label string) FieldSpec {
	return FieldSpec{
		Name:     name,
		ID:       name,
		Label:    label,
		Required: true,
	}
}

// Optional returns a copy of the field that may be left empty
func (f FieldSpec) Optional() FieldSpec {
	f.Required = false
	return f
}

// Record is the working record being built, keyed by field name.
type Record map[string]string

// With returns a copy of the record with a single key replaced. The receiver
// is left untouched.
func (r Record) With(name, value string) Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[name] = value
	return out
}

// Clone returns a shallow copy of the record
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ErrorMap holds validation messages keyed by field name.
type ErrorMap map[string]string

// Status is the submission status of the form.
type Status int

const (
	StatusReady Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusError:
		return "ERROR"
	default:
		return "READY"
	}
}

// Terminal reports whether the status is a final display state
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// State is everything the form holds between events.
type State struct {
	Record Record
	Errors ErrorMap
	Status Status
	// ErrorMessage is the detail of the last failed creation. It is kept for
	// logging and is not part of the rendered message.
	ErrorMessage string
	// Submitting is true while a creation call is in flight.
	Submitting bool
	// Submitted is the record snapshot handed to the creation call.
	Submitted Record
}

// DefaultFields returns the character form fields in display order.
func DefaultFields() []FieldSpec {
	return []FieldSpec{
		NewFieldSpec("name", "Name"),
		NewFieldSpec("gender", "Gender"),
		NewFieldSpec("species", "Species"),
		NewFieldSpec("status", "Status"),
		NewFieldSpec("type", "Type").Optional(),
	}
}
