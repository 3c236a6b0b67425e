package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"chatrelay-backend/internal/handlers"
	"chatrelay-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	modelsHandler *handlers.ModelsHandler,
	frontendURL string,
	chatRateLimit int,
	chatRateWindow time.Duration,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Chat rate limiter (per IP)
	chatLimiter := middleware.NewRateLimiter(chatRateLimit, chatRateWindow)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.With(chatLimiter.Middleware).Post("/chat", chatHandler.Completions)
		r.Get("/models", modelsHandler.List)
	})

	return r
}
