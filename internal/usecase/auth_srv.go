package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/internal/data/repository"
	"car-rental/internal/dto/request"
	"car-rental/internal/dto/response"
	"car-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService is the mock authentication flow: no account database, only the
// single kv user snapshot. Register creates the snapshot, Login accepts any
// non-empty credentials unless a snapshot with the same email exists (then
// the password must verify against its hash), Logout clears everything.
type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID string) (*response.UserResponse, error)
}

type authService struct {
	repo       *repository.Repository
	sessionTTL time.Duration
	log        *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:       repo,
		sessionTTL: time.Duration(config.Session.TTLHours) * time.Hour,
		log:        log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// Validation covers the password confirmation equality rule (eqfield)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	user := &entity.User{
		ID:           "user-" + uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Save(ctx, user); err != nil {
		s.log.Error("Failed to save user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session after register",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return response.AuthToResponse(user, session, "/dashboard"), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	stored, err := s.repo.User.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load user snapshot", zap.Error(err))
		return nil, fmt.Errorf("failed to load session")
	}

	var user *entity.User
	if stored != nil && stored.Email == req.Email {
		// A registered snapshot exists for this email: the password counts
		if stored.PasswordHash != "" && !utils.CheckPasswordHash(req.Password, stored.PasswordHash) {
			s.log.Warn("Invalid password for stored user", zap.String("email", req.Email))
			return nil, fmt.Errorf("invalid credentials")
		}
		user = stored
	} else {
		// Demo semantics: any non-empty credentials authenticate, the
		// display name is the email local part, and the identity is the
		// fixed demo user the seed bookings belong to.
		user = &entity.User{
			ID:        "user-1",
			Name:      emailLocalPart(req.Email),
			Email:     req.Email,
			CreatedAt: time.Now(),
		}

		if err := s.repo.User.Save(ctx, user); err != nil {
			s.log.Error("Failed to save user snapshot", zap.Error(err))
			return nil, fmt.Errorf("failed to create session")
		}
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return response.AuthToResponse(user, session, "/dashboard"), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	// Clearing the snapshot moves the lifecycle to anonymous
	if err := s.repo.User.Clear(ctx); err != nil {
		s.log.Error("Failed to clear user snapshot", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.repo.User.Load(ctx)
	if err != nil {
		s.log.Error("Failed to load user snapshot", zap.Error(err))
		return nil, fmt.Errorf("load user: %w", err)
	}

	if user == nil || user.ID != userID {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID string) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		Token:     uuid.New(),
		UserID:    userID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
