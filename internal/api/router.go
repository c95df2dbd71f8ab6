package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/teamdebug/quizard/internal/api/handlers"
	"github.com/teamdebug/quizard/internal/api/middleware"
	"github.com/teamdebug/quizard/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.Auth)
	reviewerHandler := handlers.NewReviewerHandler(services.Reviewer, services.Quiz)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout) // bearer optional, idempotent
		r.Get("/users", userHandler.List)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Get("/profile", userHandler.Profile)

			r.Route("/reviewers", func(r chi.Router) {
				r.Post("/upload", reviewerHandler.Upload)
				r.Get("/{id}", reviewerHandler.Get)
				r.Get("/{id}/summary", reviewerHandler.Summary)
				r.Post("/{id}/flashcards", reviewerHandler.Flashcards)
				r.Post("/{id}/quiz", reviewerHandler.Quiz)
				r.Post("/{id}/quiz/attempts", reviewerHandler.SubmitAttempt)
			})
		})
	})

	return r
}
