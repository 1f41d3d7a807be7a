package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fsantini/lishgreek/internal/translit"
	"github.com/fsantini/lishgreek/internal/web/handlers"
	"github.com/fsantini/lishgreek/internal/web/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	translator *translit.Translator
	log        *slog.Logger
}

func NewRouter(translator *translit.Translator, log *slog.Logger) *Router {
	return &Router{translator: translator, log: log}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	translateHandler := handlers.NewTranslateHandler(r.translator, r.log)
	rateLimiter := middleware.NewRateLimiter(60, time.Minute)

	mux.Handle("POST /api/v1/translate",
		middleware.Chain(
			http.HandlerFunc(translateHandler.Translate),
			middleware.CORS,
			middleware.PrometheusMetrics("translate"),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /api/v1/candidates",
		middleware.Chain(
			http.HandlerFunc(translateHandler.Candidates),
			middleware.CORS,
			middleware.PrometheusMetrics("candidates"),
			middleware.RequestLogger(r.log),
		),
	)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
