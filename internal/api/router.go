package api

import (
	"net/http"

	"github.com/BramsuryaJP/my-portfolio-backend/internal/api/handlers"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/api/middleware"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/config"
	"github.com/BramsuryaJP/my-portfolio-backend/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.CookieAuth {
		r.Use(middleware.CSRF(middleware.CSRFConfig{AllowedOrigins: cfg.AllowedOrigins}))
	}
	// Bridge must run before any auth check, for every request.
	r.Use(middleware.CookieToHeader)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Uploaded images
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(services.Images.Root()))))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, handlers.NewCookieHelper(cfg.CookieAuth))
	projectHandler := handlers.NewProjectHandler(services.Project)
	skillHandler := handlers.NewSkillHandler(services.Skill)

	r.Route("/api", func(r chi.Router) {
		// Auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.JWT))
				r.Get("/me", authHandler.Me)
			})
		})

		// Project routes: reads are public, writes require auth
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.GetAll)
			r.Get("/paged", projectHandler.GetPaged)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.JWT))
				r.Post("/", projectHandler.Create)
				r.Put("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)
				r.Post("/delete-multiple", projectHandler.DeleteMultiple)
			})
		})

		// Skill routes
		r.Route("/skills", func(r chi.Router) {
			r.Get("/", skillHandler.GetAll)
			r.Get("/paged", skillHandler.GetPaged)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.JWT))
				r.Post("/", skillHandler.Create)
				r.Put("/{id}", skillHandler.Update)
				r.Delete("/{id}", skillHandler.Delete)
				r.Post("/delete-multiple", skillHandler.DeleteMultiple)
			})
		})
	})

	return r
}
