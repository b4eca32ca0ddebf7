package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/Dosada05/chess-registry/docs" // swagger spec
	"github.com/Dosada05/chess-registry/handlers"
	"github.com/Dosada05/chess-registry/middleware"
)

// Handlers groups every HTTP handler the router serves.
type Handlers struct {
	Federations *handlers.FederationHandler
	Players     *handlers.PlayerHandler
	Tournaments *handlers.TournamentHandler
	Results     *handlers.ResultHandler
	Search      *handlers.SearchHandler
	System      *handlers.SystemHandler
	Live        *handlers.WebSocketHandler
}

// SetupRoutes mounts the API under /api plus /metrics and /swagger on router.
func SetupRoutes(router chi.Router, h Handlers, allowedOrigins []string, logger *zap.SugaredLogger) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.System.Health)
		r.Get("/ready", h.System.Ready)

		r.Route("/federations", func(r chi.Router) {
			r.Post("/", h.Federations.Create)
			r.Get("/", h.Federations.List)
			r.Get("/{code}", h.Federations.GetByCode)
		})

		r.Route("/players", func(r chi.Router) {
			r.Post("/", h.Players.Create)
			r.Get("/", h.Players.List)
			r.Get("/{id}", h.Players.GetByID)
			r.Put("/{id}", h.Players.Update)
			r.Delete("/{id}", h.Players.Delete)
			r.Get("/{id}/results", h.Results.ListByPlayer)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Post("/", h.Tournaments.Create)
			r.Get("/", h.Tournaments.List)
			r.Get("/{id}", h.Tournaments.GetByID)
			r.Put("/{id}", h.Tournaments.Update)
			r.Delete("/{id}", h.Tournaments.Delete)
			r.Get("/{id}/results", h.Results.ListByTournament)
			r.Post("/{id}/results/export", h.Results.Export)
			r.Get("/{id}/live", h.Live.ServeWs)
		})

		r.Post("/tournament-results", h.Results.Create)
		r.Get("/search", h.Search.Search)
	})
}
