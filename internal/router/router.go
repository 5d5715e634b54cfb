package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-notes-api/internal/config"
	"go-notes-api/internal/handler"
	"go-notes-api/internal/middleware"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	noteHandler *handler.NoteHandler,
	health http.HandlerFunc,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.LoginRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", health)

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/", authHandler.Login)
		auth.Get("/refresh", authHandler.Refresh)
		auth.Post("/logout", authHandler.Logout)
	})

	r.Route("/users", func(users chi.Router) {
		users.Use(authMiddleware.RequireAuth)
		users.Get("/", userHandler.List)
		users.With(authMiddleware.RequireRoles("Manager", "Admin")).Post("/", userHandler.Create)
		users.With(authMiddleware.RequireRoles("Manager", "Admin")).Patch("/", userHandler.Update)
		users.With(authMiddleware.RequireRoles("Manager", "Admin")).Delete("/", userHandler.Delete)
	})

	r.Route("/notes", func(notes chi.Router) {
		notes.Use(authMiddleware.RequireAuth)
		notes.Get("/", noteHandler.List)
		notes.Post("/", noteHandler.Create)
		notes.Patch("/", noteHandler.Update)
		notes.Delete("/", noteHandler.Delete)
	})

	return r
}
