// Package schema validates incoming write payloads against one JSON Schema
// per resource kind before anything reaches the store.
package schema

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

type Resource string

const (
	Skill      Resource = "skill"
	Experience Resource = "experience"
	BlogPost   Resource = "blogpost"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var compiled = map[Resource]*jsonschema.Schema{}

func init() {
	for _, r := range []Resource{Skill, Experience, BlogPost} {
		raw, err := schemaFS.ReadFile(fmt.Sprintf("schemas/%s.json", r))
		if err != nil {
			panic(fmt.Sprintf("schema: missing embedded schema for %s: %v", r, err))
		}

		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(raw, rs); err != nil {
			panic(fmt.Sprintf("schema: compile %s: %v", r, err))
		}

		compiled[r] = rs
	}
}

// ValidationError carries the field-level issues found in a payload.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid payload: " + strings.Join(e.Issues, "; ")
}

// Validate checks body against the schema for resource r. It returns a
// *ValidationError for malformed JSON or schema violations, and a plain error
// only when validation itself could not run.
func Validate(ctx context.Context, r Resource, body []byte) error {
	rs, ok := compiled[r]
	if !ok {
		return fmt.Errorf("schema: unknown resource %q", r)
	}

	if !json.Valid(body) {
		return &ValidationError{Issues: []string{"body is not valid JSON"}}
	}

	keyErrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return fmt.Errorf("schema: validate %s: %w", r, err)
	}
	if len(keyErrs) == 0 {
		return nil
	}

	issues := make([]string, 0, len(keyErrs))
	for _, ke := range keyErrs {
		issues = append(issues, fmt.Sprintf("%s: %s", ke.PropertyPath, ke.Message))
	}

	return &ValidationError{Issues: issues}
}
