package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portfolio-api/internal/models"
	"portfolio-api/internal/schema"
	"portfolio-api/pkg/store"
)

type ExperiencesHandler struct {
	repo store.ExperienceRepo
}

func NewExperiencesHandler(repo store.ExperienceRepo) *ExperiencesHandler {
	return &ExperiencesHandler{repo: repo}
}

type experiencePayload struct {
	Company   string  `json:"company"`
	Role      string  `json:"role"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Summary   *string `json:"summary"`
	Image     *string `json:"image"`
	Order     int     `json:"order"`
}

func (p *experiencePayload) toModel() *models.Experience {
	return &models.Experience{
		Company:   p.Company,
		Role:      p.Role,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Summary:   p.Summary,
		Image:     p.Image,
		Order:     p.Order,
	}
}

func (h *ExperiencesHandler) List(w http.ResponseWriter, r *http.Request) {
	exps, err := h.repo.ListExperiences(r.Context(), listLimit(r))
	if err != nil {
		logger.Error("list experiences", "err", err)
		writeError(w, "could not list experiences", http.StatusInternalServerError)
		return
	}

	writeJSON(w, exps, http.StatusOK)
}

func (h *ExperiencesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p experiencePayload
	if !decodePayload(w, r, schema.Experience, &p) {
		return
	}

	id, err := h.repo.CreateExperience(r.Context(), p.toModel())
	if err != nil {
		logger.Error("create experience", "err", err)
		writeError(w, "could not create experience", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"id": id}, http.StatusCreated)
}

func (h *ExperiencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !store.ValidID(id) {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var p experiencePayload
	if !decodePayload(w, r, schema.Experience, &p) {
		return
	}

	err := h.repo.UpdateExperience(r.Context(), id, p.toModel())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("update experience", "id", id, "err", err)
		writeError(w, "could not update experience", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (h *ExperiencesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !store.ValidID(id) {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	n, err := h.repo.DeleteExperience(r.Context(), id)
	if err != nil {
		logger.Error("delete experience", "id", id, "err", err)
		writeError(w, "could not delete experience", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"deleted": n}, http.StatusOK)
}
