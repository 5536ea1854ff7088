package prompt

import (
	"context"
	"fmt"

	"charform/internal/character"
	"charform/internal/form"
)

// Run asks for every field, submits, and re-asks only the fields that failed
// validation until the form is accepted. The creation result message is
// printed through the driver.
func Run(ctx context.Context, d Driver, f *form.Form, creator character.Creator) (form.State, error) {
	ask := f.Fields()

	for {
		for _, field := range ask {
			v, err := d.Input(ctx, inputConfig(field, f.State().Record[field.Name]))
			if err != nil {
				return f.State(), err
			}
			f.Dispatch(form.FieldChanged{Name: field.Name, Value: v})
		}

		create, ok := f.Dispatch(form.SubmitRequested{}).(form.CreateEffect)
		if ok {
			return submit(ctx, d, f, creator, create.Record)
		}

		ask = ask[:0]
		for _, field := range f.Fields() {
			if field.Error == "" {
				continue
			}
			if err := d.Info(ctx, fmt.Sprintf("%s: %s", field.Label, field.Error)); err != nil {
				return f.State(), err
			}
			ask = append(ask, field)
		}
		if len(ask) == 0 {
			return f.State(), nil
		}
	}
}

func submit(ctx context.Context, d Driver, f *form.Form, creator character.Creator, rec form.Record) (form.State, error) {
	if err := creator.Create(ctx, rec); err != nil {
		f.Dispatch(form.SubmissionFailed{Err: err})
	} else {
		f.Dispatch(form.SubmissionSucceeded{})
	}
	if err := d.Info(ctx, f.Message()); err != nil {
		return f.State(), err
	}
	return f.State(), nil
}

func inputConfig(field form.FieldSpec, current string) InputConfig {
	cfg := InputConfig{
		Message: field.Label + ":",
		Default: current,
		Help:    field.Error,
	}
	if !field.Required {
		cfg.Message = field.Label + " (optional):"
	}
	return cfg
}
