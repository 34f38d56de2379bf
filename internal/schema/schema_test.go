package schema_test

import (
	"context"
	"errors"
	"testing"

	"portfolio-api/internal/schema"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		resource schema.Resource
		body     string
		wantOK   bool
	}{
		{
			name:     "Skill_Minimal",
			resource: schema.Skill,
			body:     `{"title":"Go","slug":"go"}`,
			wantOK:   true,
		},
		{
			name:     "Skill_Full",
			resource: schema.Skill,
			body:     `{"title":"Go","slug":"go","icon":"go.svg","summary":"a language","link":null,"tags":["backend"],"order":3}`,
			wantOK:   true,
		},
		{
			name:     "Skill_MissingTitle",
			resource: schema.Skill,
			body:     `{"slug":"go"}`,
			wantOK:   false,
		},
		{
			name:     "Skill_WrongTagsType",
			resource: schema.Skill,
			body:     `{"title":"Go","slug":"go","tags":"backend"}`,
			wantOK:   false,
		},
		{
			name:     "Skill_WrongOrderType",
			resource: schema.Skill,
			body:     `{"title":"Go","slug":"go","order":"first"}`,
			wantOK:   false,
		},
		{
			name:     "Experience_Minimal",
			resource: schema.Experience,
			body:     `{"company":"Acme","role":"Engineer","startDate":"2021-01-15"}`,
			wantOK:   true,
		},
		{
			name:     "Experience_NullEndDate",
			resource: schema.Experience,
			body:     `{"company":"Acme","role":"Engineer","startDate":"2021-01-15","endDate":null}`,
			wantOK:   true,
		},
		{
			name:     "Experience_BadStartDate",
			resource: schema.Experience,
			body:     `{"company":"Acme","role":"Engineer","startDate":"Jan 2021"}`,
			wantOK:   false,
		},
		{
			name:     "Experience_MissingRole",
			resource: schema.Experience,
			body:     `{"company":"Acme","startDate":"2021-01-15"}`,
			wantOK:   false,
		},
		{
			name:     "BlogPost_Minimal",
			resource: schema.BlogPost,
			body:     `{"title":"Hello","slug":"hello"}`,
			wantOK:   true,
		},
		{
			name:     "BlogPost_Full",
			resource: schema.BlogPost,
			body:     `{"title":"Hello","slug":"hello","excerpt":"hi","content":"# Hello","coverImage":null,"tags":["go"],"published":false}`,
			wantOK:   true,
		},
		{
			name:     "BlogPost_WrongPublishedType",
			resource: schema.BlogPost,
			body:     `{"title":"Hello","slug":"hello","published":"yes"}`,
			wantOK:   false,
		},
		{
			name:     "BlogPost_NotJSON",
			resource: schema.BlogPost,
			body:     `not a json`,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate(context.Background(), tt.resource, []byte(tt.body))
			if tt.wantOK && err != nil {
				t.Fatalf("expected valid payload, got: %v", err)
			}
			if !tt.wantOK {
				var verr *schema.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected *ValidationError, got: %v", err)
				}
				if len(verr.Issues) == 0 {
					t.Fatalf("expected at least one issue")
				}
			}
		})
	}
}

func TestValidate_UnknownResource(t *testing.T) {
	err := schema.Validate(context.Background(), schema.Resource("project"), []byte(`{}`))
	if err == nil {
		t.Fatalf("expected error for unknown resource")
	}
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("unknown resource is not a payload problem")
	}
}
