package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"gamewatch/internal/metrics"
)

// NewRouter assembles the HTTP surface: API routes for the web client, the
// redirect endpoints notification clicks land on, and the probe endpoints.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(LoggingMiddleware(logger, recorder))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Post("/user", handler.CreateUser)
		r.Get("/user/{userID}", handler.GetUser)
		r.Put("/user/{userID}/teams", handler.UpdateTeams)
		r.Put("/user/{userID}/browser", handler.UpdateBrowser)
		r.Get("/teams", handler.Teams)
		r.Get("/games/{userID}", handler.GamesForUser)
		r.Post("/test-notification/{userID}", handler.TestNotification)
	})

	r.Get("/watch/{league}/{gameID}", handler.Watch)
	r.Get("/go/{league}/{gameID}", handler.SmartRedirect)

	return r
}
