package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"portfolio-api/pkg/store/mock"
)

func TestSkills_CreateThenGetBySlug(t *testing.T) {
	m := mock.NewStore()
	handler := testRouter(m)
	cookie := login(t, handler)

	w := doJSON(t, handler, http.MethodPost, "/api/admin/skills",
		map[string]any{"title": "Go", "slug": "go", "order": 1}, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)
	if len(created.ID) != 24 {
		t.Fatalf("expected 24-hex id, got %q", created.ID)
	}

	w = doJSON(t, handler, http.MethodGet, "/api/skills/go", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}

	var got map[string]any
	decodeBody(t, w, &got)
	want := map[string]any{
		"id":      created.ID,
		"title":   "Go",
		"slug":    "go",
		"icon":    nil,
		"summary": nil,
		"link":    nil,
		"tags":    []any{},
		"order":   float64(1),
	}
	for k, v := range want {
		gv, ok := got[k]
		if !ok {
			t.Fatalf("missing field %q in %v", k, got)
		}
		gb, _ := json.Marshal(gv)
		wb, _ := json.Marshal(v)
		if string(gb) != string(wb) {
			t.Fatalf("field %q: got %s want %s", k, gb, wb)
		}
	}
	if _, leaked := got["_id"]; leaked {
		t.Fatalf("internal id field must not be exposed")
	}
}

func TestSkills_GetMissingSlug(t *testing.T) {
	handler := testRouter(mock.NewStore())

	w := doJSON(t, handler, http.MethodGet, "/api/skills/rust", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSkills_ListSortedByOrder(t *testing.T) {
	m := mock.NewStore()
	handler := testRouter(m)
	cookie := login(t, handler)

	for _, p := range []map[string]any{
		{"title": "Kubernetes", "slug": "k8s", "order": 3},
		{"title": "Go", "slug": "go", "order": 1},
		{"title": "Docker", "slug": "docker", "order": 2},
	} {
		if w := doJSON(t, handler, http.MethodPost, "/api/admin/skills", p, cookie); w.Code != http.StatusCreated {
			t.Fatalf("create %v: got %d", p, w.Code)
		}
	}

	w := doJSON(t, handler, http.MethodGet, "/api/skills", nil)
	var skills []struct {
		Slug string `json:"slug"`
	}
	decodeBody(t, w, &skills)
	if len(skills) != 3 || skills[0].Slug != "go" || skills[1].Slug != "docker" || skills[2].Slug != "k8s" {
		t.Fatalf("expected order ascending, got %+v", skills)
	}

	// limit truncates
	w = doJSON(t, handler, http.MethodGet, "/api/skills?limit=2", nil)
	decodeBody(t, w, &skills)
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills with limit=2, got %d", len(skills))
	}
}

func TestSkills_CreateInvalidPayload(t *testing.T) {
	m := mock.NewStore()
	handler := testRouter(m)
	cookie := login(t, handler)

	tests := []struct {
		name string
		body any
	}{
		{"MissingTitle", map[string]any{"slug": "go"}},
		{"MissingSlug", map[string]any{"title": "Go"}},
		{"WrongTagsType", map[string]any{"title": "Go", "slug": "go", "tags": "backend"}},
		{"NotJSON", "not a json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, handler, http.MethodPost, "/api/admin/skills", tt.body, cookie)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
			}
		})
	}

	skills, _ := m.ListSkills(context.Background(), 100)
	if len(skills) != 0 {
		t.Fatalf("rejected payloads must not reach the store, got %d docs", len(skills))
	}
}

func TestSkills_UpdateReplacesAllFields(t *testing.T) {
	m := mock.NewStore()
	handler := testRouter(m)
	cookie := login(t, handler)

	w := doJSON(t, handler, http.MethodPost, "/api/admin/skills",
		map[string]any{"title": "Go", "slug": "go", "summary": "old", "order": 1}, cookie)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	w = doJSON(t, handler, http.MethodPut, "/api/admin/skills/"+created.ID,
		map[string]any{"title": "Golang", "slug": "golang", "order": 5}, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	got, err := m.GetSkillBySlug(context.Background(), "golang")
	if err != nil {
		t.Fatalf("lookup after update: %v", err)
	}
	if got.Title != "Golang" || got.Order != 5 {
		t.Fatalf("update did not replace fields: %+v", got)
	}
	if got.Summary != nil {
		t.Fatalf("full-replace update must clear omitted optional fields, got %q", *got.Summary)
	}
	if got.UpdatedAt == nil {
		t.Fatalf("update must stamp updated_at")
	}
}

func TestSkills_UpdateNonexistentID(t *testing.T) {
	handler := testRouter(mock.NewStore())
	cookie := login(t, handler)

	w := doJSON(t, handler, http.MethodPut, "/api/admin/skills/000000000000000000000000",
		map[string]any{"title": "Go", "slug": "go"}, cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSkills_MalformedID(t *testing.T) {
	m := mock.NewStore()
	handler := testRouter(m)
	cookie := login(t, handler)

	w := doJSON(t, handler, http.MethodPut, "/api/admin/skills/not-an-id",
		map[string]any{"title": "Go", "slug": "go"}, cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("update: expected 400, got %d", w.Code)
	}

	w = doJSON(t, handler, http.MethodDelete, "/api/admin/skills/not-an-id", nil, cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete: expected 400, got %d", w.Code)
	}
}

func TestSkills_Delete(t *testing.T) {
	m := mock.NewStore()
	handler := testRouter(m)
	cookie := login(t, handler)

	w := doJSON(t, handler, http.MethodPost, "/api/admin/skills",
		map[string]any{"title": "Go", "slug": "go"}, cookie)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	var res struct {
		Deleted int64 `json:"deleted"`
	}

	w = doJSON(t, handler, http.MethodDelete, "/api/admin/skills/"+created.ID, nil, cookie)
	decodeBody(t, w, &res)
	if res.Deleted != 1 {
		t.Fatalf("expected deleted=1, got %d", res.Deleted)
	}

	// deleting a missing id reports 0, not an error
	w = doJSON(t, handler, http.MethodDelete, "/api/admin/skills/"+created.ID, nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for missing id, got %d", w.Code)
	}
	decodeBody(t, w, &res)
	if res.Deleted != 0 {
		t.Fatalf("expected deleted=0, got %d", res.Deleted)
	}
}
