package schema

import (
	"strings"

	"github.com/invopop/jsonschema"

	"charform/internal/form"
)

// Generate generates a JSON schema for the given type T
func Generate[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T

	return reflector.Reflect(v)
}

// Fields derives form fields from the schema of T, in declaration order.
// Properties without a title fall back to their name.
func Fields[T any]() []form.FieldSpec {
	s := Generate[T]()
	if s.Properties == nil {
		return nil
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	var fields []form.FieldSpec
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		label := strings.TrimSpace(pair.Value.Title)
		if label == "" {
			label = pair.Key
		}
		field := form.NewFieldSpec(pair.Key, label)
		field.Required = required[pair.Key]
		fields = append(fields, field)
	}
	return fields
}
