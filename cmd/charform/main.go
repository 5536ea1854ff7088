package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"charform/internal/character"
	"charform/internal/config"
	"charform/internal/form"
	"charform/internal/logger"
	"charform/internal/prompt"
	"charform/internal/schema"
	"charform/internal/tui"
)

const usage = `usage: charform [command]

commands:
  (none)              interactive form
  prompt              line-by-line prompts
  run [field=value]   submit once; reads field=value lines from stdin when no args are given
  schema              print the character JSON schema
  list                list characters kept by the sqlite or memory backend`

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("charform: %v", err)
	}

	if err := logger.Init(cfg.LogDir); err != nil {
		config.Exitf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()
	logger.Debug("Starting charform with backend %s", cfg.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := os.Args[1:]
	command := ""
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	if command == "schema" {
		if err := printSchema(os.Stdout); err != nil {
			config.Exitf("charform: %v", err)
		}
		return
	}
	if command == "help" || command == "-h" || command == "--help" {
		fmt.Println(usage)
		return
	}

	backend, err := character.Open(ctx, cfg)
	if err != nil {
		config.Exitf("charform: %v", err)
	}
	defer backend.Close()

	creator := character.Logged(character.WithTimeout(backend, cfg.Timeout))
	f := form.New(schema.Fields[character.Character](), form.OneShot(cfg.OneShot))

	switch command {
	case "":
		if _, err := tui.Run(ctx, f, creator, cfg.Backend); err != nil {
			config.Exitf("Error: %s", err)
		}
	case "prompt":
		state, err := prompt.Run(ctx, prompt.NewSurveyDriver(os.Stdout), f, creator)
		if errors.Is(err, prompt.ErrAborted) {
			return
		}
		if err != nil {
			config.Exitf("Error: %s", err)
		}
		if state.Status == form.StatusError {
			os.Exit(1)
		}
	case "run":
		assignments, err := readAssignments(args, os.Stdin)
		if err != nil {
			config.Exitf("Error: %s", err)
		}
		state, err := submitOnce(ctx, f, creator, assignments, os.Stdout)
		if err != nil {
			config.Exitf("Error: %s", err)
		}
		if state.Status != form.StatusSuccess {
			os.Exit(1)
		}
	case "list":
		lister, ok := backend.(character.Lister)
		if !ok {
			config.Exitf("charform: the %s backend does not keep characters", cfg.Backend)
		}
		if err := printList(ctx, lister, os.Stdout); err != nil {
			config.Exitf("Error: %s", err)
		}
	default:
		config.Exitf("charform: unknown command %q\n\n%s", command, usage)
	}
}

// readAssignments returns the field=value pairs from args, or from the
// non-empty lines of in when args is empty.
func readAssignments(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(lines) == 0 {
		return nil, errors.New("no input provided")
	}
	return lines, nil
}

// submitOnce applies the assignments, submits, and writes either the
// validation errors or the result message to out.
func submitOnce(ctx context.Context, f *form.Form, creator character.Creator, assignments []string, out io.Writer) (form.State, error) {
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return f.State(), fmt.Errorf("expected field=value, got %q", a)
		}
		name = strings.TrimSpace(name)
		if _, known := f.Field(name); !known {
			return f.State(), fmt.Errorf("unknown field %q", name)
		}
		f.Dispatch(form.FieldChanged{Name: name, Value: value})
	}

	create, ok := f.Dispatch(form.SubmitRequested{}).(form.CreateEffect)
	if !ok {
		for _, field := range f.Fields() {
			if field.Error != "" {
				fmt.Fprintf(out, "%s: %s\n", field.Name, field.Error)
			}
		}
		return f.State(), nil
	}

	if err := creator.Create(ctx, create.Record); err != nil {
		f.Dispatch(form.SubmissionFailed{Err: err})
	} else {
		f.Dispatch(form.SubmissionSucceeded{})
	}
	fmt.Fprintln(out, f.Message())
	return f.State(), nil
}

func printSchema(out io.Writer) error {
	data, err := json.MarshalIndent(schema.Generate[character.Character](), "", "  ")
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func printList(ctx context.Context, lister character.Lister, out io.Writer) error {
	stored, err := lister.List(ctx)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		_, err := fmt.Fprintln(out, "No characters found")
		return err
	}
	for _, s := range stored {
		c := s.Character
		line := fmt.Sprintf("%s  %s (%s, %s, %s)", s.CreatedAt.Format("2006-01-02 15:04:05"), c.Name, c.Gender, c.Species, c.Status)
		if c.Type != "" {
			line += " [" + c.Type + "]"
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
