package serverhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"rating-service/internal/bitrix"
	"rating-service/internal/config"
	"rating-service/internal/middleware"
	ratingHnd "rating-service/internal/rating/handler"
	"rating-service/server/http/handlers"
)

func NewRouter(cfg config.Config, client *bitrix.Client, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))

	r.Get("/health", handlers.Health)
	r.Get("/api/rating", ratingHnd.Rating(client, cfg.CacheMaxAge, logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	})

	return r
}
