package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portfolio-api/internal/models"
	"portfolio-api/internal/schema"
	"portfolio-api/pkg/store"
)

type SkillsHandler struct {
	repo store.SkillRepo
}

func NewSkillsHandler(repo store.SkillRepo) *SkillsHandler {
	return &SkillsHandler{repo: repo}
}

type skillPayload struct {
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Icon    *string  `json:"icon"`
	Summary *string  `json:"summary"`
	Link    *string  `json:"link"`
	Tags    []string `json:"tags"`
	Order   int      `json:"order"`
}

func (p *skillPayload) toModel() *models.Skill {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return &models.Skill{
		Title:   p.Title,
		Slug:    p.Slug,
		Icon:    p.Icon,
		Summary: p.Summary,
		Link:    p.Link,
		Tags:    tags,
		Order:   p.Order,
	}
}

func (h *SkillsHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.repo.ListSkills(r.Context(), listLimit(r))
	if err != nil {
		logger.Error("list skills", "err", err)
		writeError(w, "could not list skills", http.StatusInternalServerError)
		return
	}

	writeJSON(w, skills, http.StatusOK)
}

func (h *SkillsHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	sk, err := h.repo.GetSkillBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("get skill", "slug", slug, "err", err)
		writeError(w, "could not load skill", http.StatusInternalServerError)
		return
	}

	writeJSON(w, sk, http.StatusOK)
}

func (h *SkillsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p skillPayload
	if !decodePayload(w, r, schema.Skill, &p) {
		return
	}

	id, err := h.repo.CreateSkill(r.Context(), p.toModel())
	if err != nil {
		logger.Error("create skill", "err", err)
		writeError(w, "could not create skill", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"id": id}, http.StatusCreated)
}

func (h *SkillsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !store.ValidID(id) {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var p skillPayload
	if !decodePayload(w, r, schema.Skill, &p) {
		return
	}

	err := h.repo.UpdateSkill(r.Context(), id, p.toModel())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("update skill", "id", id, "err", err)
		writeError(w, "could not update skill", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (h *SkillsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !store.ValidID(id) {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	n, err := h.repo.DeleteSkill(r.Context(), id)
	if err != nil {
		logger.Error("delete skill", "id", id, "err", err)
		writeError(w, "could not delete skill", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"deleted": n}, http.StatusOK)
}
