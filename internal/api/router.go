package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramonehamilton/replay-companion/internal/api/handlers"
	"github.com/ramonehamilton/replay-companion/internal/api/response"
	"github.com/ramonehamilton/replay-companion/internal/version"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		profileHandler := handlers.NewProfileHandler(s.profiles)

		r.Route("/games", func(r chi.Router) {
			r.Get("/", profileHandler.ListGames)
			r.Get("/latest/profile", profileHandler.GetLatestProfile)
			r.Get("/{gameID}/profile", profileHandler.GetGameProfile)
		})

		r.Post("/compare", profileHandler.Compare)
	})
}

// healthCheck returns server health status.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "replay-companion-api",
		"version": version.String(),
	})
}
