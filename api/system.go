package api

import (
	"fmt"
	"net/http"

	"portfolio-api/internal/config"
	"portfolio-api/pkg/store"
)

type SystemHandler struct {
	cfg  *config.Config
	diag store.Diagnostics
}

func NewSystemHandler(cfg *config.Config, diag store.Diagnostics) *SystemHandler {
	return &SystemHandler{cfg: cfg, diag: diag}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "Portfolio API running"}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"version":"%s","buildTime":"%s"}`, version, buildTime)
	}
}

// Diagnostics is a best-effort health probe. It never fails outright: every
// store problem is caught and downgraded to a status string.
func (h *SystemHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "running",
		"database":          "not initialized",
		"database_url":      presence(h.cfg.DatabaseURL),
		"database_name":     presence(h.cfg.DatabaseName),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.diag != nil {
		if err := h.diag.Ping(r.Context()); err != nil {
			resp["database"] = "error: " + truncate(err.Error(), 80)
		} else {
			resp["connection_status"] = "connected"
			if names, err := h.diag.CollectionNames(r.Context()); err != nil {
				resp["database"] = "connected but error: " + truncate(err.Error(), 80)
			} else {
				resp["database"] = "connected and working"
				resp["collections"] = names
			}
		}
	}

	writeJSON(w, resp, http.StatusOK)
}

func presence(v string) string {
	if v != "" {
		return "set"
	}

	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
