package wire

import (
	"car-rental/internal/adaptor"
	"car-rental/internal/data/repository"
	"car-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	authed := middleware.AuthSession(repo.Session, log)
	r.With(authed).Post("/api/logout", authHandler.Logout)
	r.With(authed).Get("/api/me", authHandler.Me)
}
