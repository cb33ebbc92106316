package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"topo-schedule/internal/config"
	"topo-schedule/internal/handlers"
	"topo-schedule/internal/logger"
	mdlwr "topo-schedule/internal/middleware"
	"topo-schedule/internal/services"
)

func NewRouter(cfg *config.Config, logr *logger.Logger, dataset *services.FlowDataset, gen services.ElementGenerator) http.Handler {
	r := chi.NewRouter()

	// Basic middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", mdlwr.SessionHeader},
		ExposedHeaders:   []string{"Link", mdlwr.SessionHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	store := services.NewSessionStore(gen, cfg.SessionTTL, cfg.SessionCleanupInterval, logr.Logger)
	topoSvc := services.NewTopologyService(dataset, services.NewRunController(cfg.WindowSize))
	integrationSvc := services.NewIntegrationService()

	sessionMW := mdlwr.NewSessionMiddleware(store, logr.Logger)

	elementHandler := handlers.NewElementHandler(topoSvc, logr.Logger)
	powerflowHandler := handlers.NewPowerflowHandler(topoSvc, store, logr.Logger)
	flowHandler := handlers.NewFlowHandler(topoSvc, logr.Logger)
	integrationHandler := handlers.NewIntegrationHandler(integrationSvc, logr.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("ok"))
		if err != nil {
			return
		}
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/sessions", powerflowHandler.CreateSession)

		// Stateless, no session needed
		r.Get("/elements/types", elementHandler.GetElementTypes)
		r.Get("/flows/columns", flowHandler.GetColumns)

		r.Route("/integrations", func(r chi.Router) {
			r.Get("/", integrationHandler.ListActions)
			r.Post("/{action}", integrationHandler.Trigger)
		})

		r.Group(func(r chi.Router) {
			r.Use(sessionMW.Sessions)

			r.Get("/sessions/current", powerflowHandler.GetSession)

			r.Route("/elements/{type}", func(r chi.Router) {
				r.Get("/", elementHandler.FilterElements)
				r.Get("/schedule", elementHandler.ProposeUpdate)
				r.Put("/schedule", elementHandler.CommitUpdate)
			})

			r.Post("/powerflow/run", powerflowHandler.RunPowerflow)
			r.Get("/flows/comparison", flowHandler.GetComparison)
		})
	})

	return r
}
