package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sak2803shi/RentalHub/internal/rental/domain"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"
	"github.com/Sak2803shi/RentalHub/pkg/jwtutil"
	"github.com/Sak2803shi/RentalHub/pkg/session"
	"github.com/Sak2803shi/RentalHub/pkg/xerrors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users    repository.UserRepository
	jwt      *jwtutil.Manager
	sessions *session.Store
	logger   *zap.Logger
}

func NewAuthService(users repository.UserRepository, jwt *jwtutil.Manager, sessions *session.Store, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, jwt: jwt, sessions: sessions, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", xerrors.ErrValidation)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, xerrors.ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user.UserID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if s.sessions != nil {
		if err := s.sessions.Save(ctx, user.UserID, token, s.jwt.TTL()); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
	}

	s.logger.Info("user logged in",
		zap.Int64("user_id", user.UserID),
		zap.String("role", string(user.Role)))

	return &domain.LoginResponse{Token: token}, nil
}

// EnsureAdmin seeds the admin account at startup when it does not exist
// yet, so a fresh deployment is immediately manageable.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.EnsureAdmin(ctx, email, string(hash)); err != nil {
		return err
	}

	s.logger.Info("admin account ensured", zap.String("email", email))
	return nil
}
