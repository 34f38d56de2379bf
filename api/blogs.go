package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"portfolio-api/internal/models"
	"portfolio-api/internal/schema"
	"portfolio-api/pkg/store"
)

type BlogsHandler struct {
	repo store.BlogRepo
}

func NewBlogsHandler(repo store.BlogRepo) *BlogsHandler {
	return &BlogsHandler{repo: repo}
}

type blogPayload struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    *string  `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage *string  `json:"coverImage"`
	Tags       []string `json:"tags"`
	Published  *bool    `json:"published"`
}

func (p *blogPayload) toModel() *models.BlogPost {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	// posts are published unless the payload says otherwise
	published := true
	if p.Published != nil {
		published = *p.Published
	}

	return &models.BlogPost{
		Title:      p.Title,
		Slug:       p.Slug,
		Excerpt:    p.Excerpt,
		Content:    p.Content,
		CoverImage: p.CoverImage,
		Tags:       tags,
		Published:  published,
	}
}

func (h *BlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.ListPublishedPosts(r.Context(), listLimit(r))
	if err != nil {
		logger.Error("list blog posts", "err", err)
		writeError(w, "could not list blog posts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, posts, http.StatusOK)
}

func (h *BlogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	p, err := h.repo.GetPublishedPostBySlug(r.Context(), slug)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("get blog post", "slug", slug, "err", err)
		writeError(w, "could not load blog post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, p, http.StatusOK)
}

func (h *BlogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p blogPayload
	if !decodePayload(w, r, schema.BlogPost, &p) {
		return
	}

	id, err := h.repo.CreateBlogPost(r.Context(), p.toModel())
	if err != nil {
		logger.Error("create blog post", "err", err)
		writeError(w, "could not create blog post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"id": id}, http.StatusCreated)
}

func (h *BlogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !store.ValidID(id) {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var p blogPayload
	if !decodePayload(w, r, schema.BlogPost, &p) {
		return
	}

	err := h.repo.UpdateBlogPost(r.Context(), id, p.toModel())
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("update blog post", "id", id, "err", err)
		writeError(w, "could not update blog post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

func (h *BlogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !store.ValidID(id) {
		writeError(w, "invalid id", http.StatusBadRequest)
		return
	}

	n, err := h.repo.DeleteBlogPost(r.Context(), id)
	if err != nil {
		logger.Error("delete blog post", "id", id, "err", err)
		writeError(w, "could not delete blog post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"deleted": n}, http.StatusOK)
}
