package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"portfolio-api/internal/config"
	"portfolio-api/pkg/store"
)

// Deps carries everything the router needs. The store fields may be nil when
// no database is configured; content routes then answer 503 while the session
// and diagnostics routes keep working.
type Deps struct {
	Cfg         *config.Config
	Version     string
	BuildTime   string
	Skills      store.SkillRepo
	Experiences store.ExperienceRepo
	Blogs       store.BlogRepo
	Diag        store.Diagnostics
}

func SetupRoutes(d *Deps) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	gate := NewSessionGate(d.Cfg.AdminPassword, []byte(d.Cfg.SessionSecret), d.Cfg.SessionTTL)
	system := NewSystemHandler(d.Cfg, d.Diag)

	// Open endpoints
	r.HandleFunc("/", system.Root).Methods("GET")
	r.HandleFunc("/test", system.Diagnostics).Methods("GET")
	r.HandleFunc("/version", system.VersionHandler(d.Version, d.BuildTime)).Methods("GET")

	// Session endpoints live under /api/admin but are not gated; they are
	// registered before the gated subrouter and therefore match first.
	r.HandleFunc("/api/admin/login", gate.Login).Methods("POST")
	r.HandleFunc("/api/admin/logout", gate.Logout).Methods("POST")
	r.HandleFunc("/api/admin/session", gate.Session).Methods("GET")

	if d.Skills == nil {
		r.PathPrefix("/api/").HandlerFunc(storeUnavailable)
		return r
	}

	skills := NewSkillsHandler(d.Skills)
	experiences := NewExperiencesHandler(d.Experiences)
	blogs := NewBlogsHandler(d.Blogs)

	// Public reads
	r.HandleFunc("/api/skills", skills.List).Methods("GET")
	r.HandleFunc("/api/skills/{slug}", skills.Get).Methods("GET")
	r.HandleFunc("/api/experiences", experiences.List).Methods("GET")
	r.HandleFunc("/api/blogs", blogs.List).Methods("GET")
	r.HandleFunc("/api/blogs/{slug}", blogs.Get).Methods("GET")

	// Admin writes
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(gate.RequireAdmin)

	admin.HandleFunc("/skills", skills.Create).Methods("POST")
	admin.HandleFunc("/skills/{id}", skills.Update).Methods("PUT")
	admin.HandleFunc("/skills/{id}", skills.Delete).Methods("DELETE")

	admin.HandleFunc("/experiences", experiences.Create).Methods("POST")
	admin.HandleFunc("/experiences/{id}", experiences.Update).Methods("PUT")
	admin.HandleFunc("/experiences/{id}", experiences.Delete).Methods("DELETE")

	admin.HandleFunc("/blogs", blogs.Create).Methods("POST")
	admin.HandleFunc("/blogs/{id}", blogs.Update).Methods("PUT")
	admin.HandleFunc("/blogs/{id}", blogs.Delete).Methods("DELETE")

	return r
}

func storeUnavailable(w http.ResponseWriter, r *http.Request) {
	writeError(w, "database not configured", http.StatusServiceUnavailable)
}
