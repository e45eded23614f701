package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fruatrecard.my.id/internal/assets"
	"fruatrecard.my.id/internal/config"
	"fruatrecard.my.id/internal/middleware"
	"fruatrecard.my.id/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(chimw.GetHead)

	// Initialize services
	projectService := services.NewProjectService(cfg.Projects)
	log.Printf("Serving %d projects", projectService.Count())

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	staticHandler := NewStaticHandler(cfg.StaticDir, cfg.DistDir, cfg.IndexFile)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS)

		r.Get("/projects", projectHandler.ListProjects)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusNotFound, "not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		})
	})

	// Pages and static files
	r.Group(func(r chi.Router) {
		if cfg.Minify {
			r.Use(assets.Middleware(assets.NewMinifier()))
		}

		r.Get("/", staticHandler.Index)
		r.Get("/static/*", staticHandler.Static)
		r.Get("/dist/*", staticHandler.Dist)
	})

	return r
}

// respondJSON writes a JSON response. The body is encoded before any
// header is sent so an encoding failure can still become a 500.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error encoding JSON: %v", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
