package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mightyai/mighty-gateway/pkg/models"
)

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			appState.Config.Server.Host,
			appState.Config.Server.Port,
		),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

// setupRouter wires the inference operations under /api/v1. Every route is a
// synchronous unary call delegated to the backend capability; /healthz is the
// gateway's own liveness endpoint and never touches the backend.
func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthcheck", HealthCheckHandler(appState))
		r.Get("/metadata", MetadataHandler(appState))
		r.Post("/embeddings", EmbeddingsHandler(appState))
		r.Post("/question-answering", QuestionAnsweringHandler(appState))
		r.Post("/sentence-transformers", SentenceTransformersHandler(appState))
		r.Post("/sequence-classification", SequenceClassificationHandler(appState))
		r.Post("/token-classification", TokenClassificationHandler(appState))
	})

	return router
}
