package character

import (
	"context"
	"fmt"
	"time"

	"charform/internal/form"
)

// Character is the payload sent to a creation backend.
type Character struct {
	Name    string `json:"name" jsonschema:"title=Name"`
	Gender  string `json:"gender" jsonschema:"title=Gender"`
	Species string `json:"species" jsonschema:"title=Species"`
	Status  string `json:"status" jsonschema:"title=Status"`
	Type    string `json:"type,omitempty" jsonschema:"title=Type"`
}

// FromRecord copies the known fields out of a form record
func FromRecord(rec form.Record) Character {
	return Character{
		Name:    rec["name"],
		Gender:  rec["gender"],
		Species: rec["species"],
		Status:  rec["status"],
		Type:    rec["type"],
	}
}

// Stored is a character persisted by a local backend.
type Stored struct {
	ID        string
	Character Character
	CreatedAt time.Time
}

// Creator creates a character from a submitted form record.
type Creator interface {
	Create(ctx context.Context, rec form.Record) error
}

// APIError is returned when the remote API rejects a creation.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("create character: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("create character: %s (status %d)", e.Message, e.StatusCode)
}
