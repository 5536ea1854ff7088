package form

import (
	"fmt"
	"strings"
)

const (
	Heading     = "Wubba lubba dub dub form!"
	SubmitLabel = "Create character"

	successFormat = `Hooray! Your character (%s) was "created" successfully!`
	ErrorText     = "Oh no! There was a problem while creating your character, try again later!"
)

// Event is a UI command processed by the form.
type Event interface {
	isEvent()
}

// FieldChanged replaces the value of one field.
type FieldChanged struct {
	Name  string
	Value string
}

// SubmitRequested runs validation and, when it passes, asks for creation.
type SubmitRequested struct{}

// SubmissionSucceeded reports that the creation call resolved.
type SubmissionSucceeded struct{}

// SubmissionFailed reports that the creation call was rejected.
type SubmissionFailed struct {
	Err error
}

// ResetRequested returns a finished form to READY.
type ResetRequested struct{}

func (FieldChanged) isEvent()        {}
func (SubmitRequested) isEvent()     {}
func (SubmissionSucceeded) isEvent() {}
func (SubmissionFailed) isEvent()    {}
func (ResetRequested) isEvent()      {}

// Effect is work the caller must perform after an event. A nil Effect means
// there is nothing to do.
type Effect interface {
	isEffect()
}

// CreateEffect asks the caller to run the creation operation with Record and
// report back with SubmissionSucceeded or SubmissionFailed.
type CreateEffect struct {
	Record Record
}

func (CreateEffect) isEffect() {}

// Option configures a Form.
type Option func(*Form)

// WithValidator overrides the field validator.
func WithValidator(v FieldValidator) Option {
	return func(f *Form) {
		if v != nil {
			f.validator = v
		}
	}
}

// OneShot disables ResetRequested so a finished form stays finished.
func OneShot(enabled bool) Option {
	return func(f *Form) {
		f.oneShot = enabled
	}
}

// Form holds the field definitions and the current state.
type Form struct {
	fields    []FieldSpec
	validator FieldValidator
	oneShot   bool
	state     State
}

// New creates a form over the given fields in READY state.
func New(fields []FieldSpec, opts ...Option) *Form {
	f := &Form{
		fields:    append([]FieldSpec(nil), fields...),
		validator: RequiredValidator{},
		state:     initialState(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func initialState() State {
	return State{
		Record: Record{},
		Errors: ErrorMap{},
		Status: StatusReady,
	}
}

// State returns the current state.
func (f *Form) State() State {
	return f.state
}

// OneShotEnabled reports whether reset is disabled.
func (f *Form) OneShotEnabled() bool {
	return f.oneShot
}

// Fields returns the field definitions with their current error messages.
func (f *Form) Fields() []FieldSpec {
	out := make([]FieldSpec, len(f.fields))
	for i, field := range f.fields {
		field.Error = f.state.Errors[field.Name]
		out[i] = field
	}
	return out
}

// Field looks up a field definition by name.
func (f *Form) Field(name string) (FieldSpec, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			field.Error = f.state.Errors[name]
			return field, true
		}
	}
	return FieldSpec{}, false
}

// Dispatch applies an event to the current state and returns the effect to run.
func (f *Form) Dispatch(ev Event) Effect {
	next, eff := f.Reduce(f.state, ev)
	f.state = next
	return eff
}

// Reduce computes the state following ev. It does not modify f.
func (f *Form) Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case FieldChanged:
		if _, ok := f.Field(ev.Name); !ok {
			return s, nil
		}
		s.Record = s.Record.With(ev.Name, ev.Value)
		return s, nil

	case SubmitRequested:
		if s.Submitting {
			return s, nil
		}
		errs := f.validate(s.Record)
		if len(errs) > 0 {
			s.Errors = errs
			return s, nil
		}
		s.Errors = ErrorMap{}
		s.Submitting = true
		s.Submitted = s.Record.Clone()
		return s, CreateEffect{Record: s.Submitted.Clone()}

	case SubmissionSucceeded:
		if !s.Submitting {
			return s, nil
		}
		s.Submitting = false
		s.Status = StatusSuccess
		s.Record = s.Submitted.Clone()
		s.ErrorMessage = ""
		return s, nil

	case SubmissionFailed:
		if !s.Submitting {
			return s, nil
		}
		s.Submitting = false
		s.Status = StatusError
		s.ErrorMessage = ""
		if ev.Err != nil {
			s.ErrorMessage = ev.Err.Error()
		}
		return s, nil

	case ResetRequested:
		if f.oneShot || s.Submitting || !s.Status.Terminal() {
			return s, nil
		}
		return initialState(), nil
	}
	return s, nil
}

// validate rebuilds the error map from scratch for every field.
func (f *Form) validate(rec Record) ErrorMap {
	errs := ErrorMap{}
	for _, field := range f.fields {
		msg := strings.TrimSpace(f.validator.ValidationMessage(field, rec[field.Name]))
		if msg != "" {
			errs[field.Name] = msg
		}
	}
	return errs
}

// Message returns the result box text, or "" while READY.
func (f *Form) Message() string {
	return MessageFor(f.state)
}

// MessageFor returns the result box text for a state.
func MessageFor(s State) string {
	switch s.Status {
	case StatusSuccess:
		return SuccessMessage(s.Record["name"])
	case StatusError:
		return ErrorText
	default:
		return ""
	}
}

// SuccessMessage formats the success text for a character name.
func SuccessMessage(name string) string {
	return fmt.Sprintf(successFormat, name)
}
