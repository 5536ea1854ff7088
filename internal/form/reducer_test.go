package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fill(f *Form, values map[string]string) {
	for name, value := range values {
		f.Dispatch(FieldChanged{Name: name, Value: value})
	}
}

func TestFieldChangedReplacesSingleKey(t *testing.T) {
	f := New(DefaultFields())

	edits := []FieldChanged{
		{Name: "name", Value: "M"},
		{Name: "name", Value: "Mo"},
		{Name: "species", Value: "Human"},
		{Name: "name", Value: "Morty"},
		{Name: "type", Value: ""},
	}

	for _, edit := range edits {
		before := f.State().Record
		snapshot := before.Clone()
		f.Dispatch(edit)
		after := f.State().Record

		want := snapshot.With(edit.Name, edit.Value)
		if diff := cmp.Diff(want, after); diff != "" {
			t.Fatalf("record after %+v mismatch (-want +got):\n%s", edit, diff)
		}
		if diff := cmp.Diff(snapshot, before); diff != "" {
			t.Fatalf("previous record was mutated (-want +got):\n%s", diff)
		}
	}
}

func TestFieldChangedIgnoresUnknownField(t *testing.T) {
	f := New(DefaultFields())
	f.Dispatch(FieldChanged{Name: "planet", Value: "Earth"})

	if len(f.State().Record) != 0 {
		t.Fatalf("expected empty record, got %v", f.State().Record)
	}
}

func TestSubmitWithMissingRequiredFields(t *testing.T) {
	f := New(DefaultFields())
	fill(f, map[string]string{"name": "Morty", "species": "Human"})

	eff := f.Dispatch(SubmitRequested{})
	if eff != nil {
		t.Fatalf("expected no effect, got %#v", eff)
	}

	want := ErrorMap{
		"gender": MissingValueMessage,
		"status": MissingValueMessage,
	}
	if diff := cmp.Diff(want, f.State().Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if f.State().Status != StatusReady {
		t.Fatalf("expected READY, got %s", f.State().Status)
	}
	if f.State().Submitting {
		t.Fatal("expected no submission in flight")
	}
}

func TestSubmitRebuildsErrorsFromScratch(t *testing.T) {
	f := New(DefaultFields())
	f.Dispatch(SubmitRequested{})
	if got := len(f.State().Errors); got != 4 {
		t.Fatalf("expected 4 errors, got %d", got)
	}

	fill(f, map[string]string{"name": "Morty", "gender": "Male"})
	f.Dispatch(SubmitRequested{})

	want := ErrorMap{
		"species": MissingValueMessage,
		"status":  MissingValueMessage,
	}
	if diff := cmp.Diff(want, f.State().Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidationIsIdempotent(t *testing.T) {
	f := New(DefaultFields())
	fill(f, map[string]string{"gender": "Female"})

	f.Dispatch(SubmitRequested{})
	first := f.State().Errors
	f.Dispatch(SubmitRequested{})
	second := f.State().Errors

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestOptionalTypeDoesNotBlockSubmit(t *testing.T) {
	f := New(DefaultFields())
	fill(f, map[string]string{"name": "Morty", "gender": "Male", "species": "Human", "status": "Alive"})

	eff := f.Dispatch(SubmitRequested{})
	create, ok := eff.(CreateEffect)
	if !ok {
		t.Fatalf("expected CreateEffect, got %#v", eff)
	}
	want := Record{"name": "Morty", "gender": "Male", "species": "Human", "status": "Alive"}
	if diff := cmp.Diff(want, create.Record); diff != "" {
		t.Fatalf("effect record mismatch (-want +got):\n%s", diff)
	}
	if len(f.State().Errors) != 0 {
		t.Fatalf("expected errors cleared, got %v", f.State().Errors)
	}
	if !f.State().Submitting {
		t.Fatal("expected submission in flight")
	}
}

func TestSubmitWhileInFlightIsIgnored(t *testing.T) {
	f := New(DefaultFields())
	fill(f, map[string]string{"name": "Morty", "gender": "Male", "species": "Human", "status": "Alive"})

	effects := 0
	for i := 0; i < 3; i++ {
		if eff := f.Dispatch(SubmitRequested{}); eff != nil {
			effects++
		}
	}
	if effects != 1 {
		t.Fatalf("expected exactly one create effect, got %d", effects)
	}
}

func TestSubmissionSucceeded(t *testing.T) {
	f := New(DefaultFields())
	fill(f, map[string]string{"name": "Morty", "gender": "Male", "species": "Human", "status": "Alive"})
	f.Dispatch(SubmitRequested{})

	// edits made while the call is in flight do not change what was created
	f.Dispatch(FieldChanged{Name: "name", Value: "Rick"})
	f.Dispatch(SubmissionSucceeded{})

	if f.State().Status != StatusSuccess {
		t.Fatalf("expected SUCCESS, got %s", f.State().Status)
	}
	want := `Hooray! Your character (Morty) was "created" successfully!`
	if got := f.Message(); got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestSubmissionFailedKeepsRecord(t *testing.T) {
	f := New(DefaultFields())
	values := map[string]string{"name": "Morty", "gender": "Male", "species": "Human", "status": "Alive"}
	fill(f, values)
	f.Dispatch(SubmitRequested{})
	f.Dispatch(SubmissionFailed{Err: errors.New("Network error")})

	s := f.State()
	if s.Status != StatusError {
		t.Fatalf("expected ERROR, got %s", s.Status)
	}
	if s.ErrorMessage != "Network error" {
		t.Fatalf("expected captured error message, got %q", s.ErrorMessage)
	}
	if got := f.Message(); got != ErrorText {
		t.Fatalf("message = %q, want %q", got, ErrorText)
	}
	if diff := cmp.Diff(Record(values), s.Record); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestResultWithoutSubmissionIsIgnored(t *testing.T) {
	f := New(DefaultFields())
	f.Dispatch(SubmissionSucceeded{})
	f.Dispatch(SubmissionFailed{Err: errors.New("late")})

	if f.State().Status != StatusReady {
		t.Fatalf("expected READY, got %s", f.State().Status)
	}
}

func TestResetFromTerminalState(t *testing.T) {
	f := New(DefaultFields())
	f.Dispatch(ResetRequested{})
	if f.State().Status != StatusReady {
		t.Fatal("reset from READY should be a no-op")
	}

	fill(f, map[string]string{"name": "Morty", "gender": "Male", "species": "Human", "status": "Alive"})
	f.Dispatch(SubmitRequested{})
	f.Dispatch(SubmissionFailed{Err: errors.New("boom")})
	f.Dispatch(ResetRequested{})

	want := State{Record: Record{}, Errors: ErrorMap{}, Status: StatusReady}
	if diff := cmp.Diff(want, f.State()); diff != "" {
		t.Fatalf("state after reset mismatch (-want +got):\n%s", diff)
	}
}

func TestOneShotFormCannotReset(t *testing.T) {
	f := New(DefaultFields(), OneShot(true))
	fill(f, map[string]string{"name": "Morty", "gender": "Male", "species": "Human", "status": "Alive"})
	f.Dispatch(SubmitRequested{})
	f.Dispatch(SubmissionSucceeded{})
	f.Dispatch(ResetRequested{})

	if f.State().Status != StatusSuccess {
		t.Fatalf("expected SUCCESS to stick, got %s", f.State().Status)
	}
}

func TestCustomValidator(t *testing.T) {
	calls := 0
	v := ValidatorFunc(func(field FieldSpec, value string) string {
		calls++
		if field.Name == "status" && value != "Alive" && value != "Dead" {
			return "  Status must be Alive or Dead  "
		}
		return ""
	})
	f := New(DefaultFields(), WithValidator(v))
	fill(f, map[string]string{"status": "Unknown"})
	f.Dispatch(SubmitRequested{})

	if calls != len(DefaultFields()) {
		t.Fatalf("expected validator called once per field, got %d", calls)
	}
	want := ErrorMap{"status": "Status must be Alive or Dead"}
	if diff := cmp.Diff(want, f.State().Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsCarryErrors(t *testing.T) {
	f := New(DefaultFields())
	fill(f, map[string]string{"name": "Morty"})
	f.Dispatch(SubmitRequested{})

	for _, field := range f.Fields() {
		switch field.Name {
		case "name", "type":
			if field.Error != "" {
				t.Fatalf("field %s should have no error, got %q", field.Name, field.Error)
			}
		default:
			if field.Error != MissingValueMessage {
				t.Fatalf("field %s error = %q", field.Name, field.Error)
			}
		}
	}
}

func TestRequiredValidatorTreatsWhitespaceAsValue(t *testing.T) {
	field := NewFieldSpec("name", "Name")
	if msg := (RequiredValidator{}).ValidationMessage(field, " "); msg != "" {
		t.Fatalf("expected whitespace to satisfy required, got %q", msg)
	}
	if msg := (RequiredValidator{}).ValidationMessage(field.Optional(), ""); msg != "" {
		t.Fatalf("optional field reported %q", msg)
	}
}
