package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/relatecrm/backend/errors"
	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/domain/repositories"
	"github.com/relatecrm/backend/pkg/jwt"
)

// SessionStore tracks revoked access tokens until they expire on their own
type SessionStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// SessionService validates bearer tokens and resolves them to users
type SessionService struct {
	userRepo repositories.UserRepository
	jwtMgr   *jwt.Manager
	store    SessionStore
	logger   *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	userRepo repositories.UserRepository,
	jwtMgr *jwt.Manager,
	store SessionStore,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		userRepo: userRepo,
		jwtMgr:   jwtMgr,
		store:    store,
		logger:   logger,
	}
}

// Validate checks the access token and returns the authenticated user
func (s *SessionService) Validate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtMgr.ValidateAccessToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken()
	}

	revoked, err := s.store.IsRevoked(ctx, token)
	if err != nil {
		// Revocation store outage must not lock everyone out
		if s.logger != nil {
			s.logger.Warn("session store check failed", zap.Error(err))
		}
	} else if revoked {
		return nil, apperrors.ErrInvalidToken()
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound()
		}
		return nil, fmt.Errorf("failed to load user for session: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidToken()
	}

	return user, nil
}

// Revoke invalidates the token for its remaining lifetime
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.jwtMgr.ValidateAccessToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken()
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.store.Revoke(ctx, token, ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
