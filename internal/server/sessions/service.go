package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okunev/musicbox/internal/common"
	"github.com/okunev/musicbox/internal/server/config"
)

// Service validates and issues session tokens. A session is valid only
// while now < TTL; the boundary now == TTL counts as expired. Expired rows
// are left in place.
type Service struct {
	repo     Repository
	validity time.Duration
	now      func() time.Time
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:     repo,
		validity: cfg.SessionValidityDuration,
		now:      time.Now,
	}
}

// Validate resolves a token to the owning account email.
//
// Failure modes, matched with errors.Is:
//   - common.ErrMissingToken: no token supplied,
//   - common.ErrUnknownToken: no session row for the token,
//   - common.ErrTokenExpired: row exists but now >= TTL.
//
// Account existence is not checked here; callers needing the display name
// perform a separate lookup.
func (s *Service) Validate(ctx context.Context, token Token) (string, error) {
	if token == "" {
		return "", common.ErrMissingToken
	}

	session, err := s.repo.Get(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUnknownToken
		}
		return "", fmt.Errorf("error fetching session: %w", err)
	}

	if s.now().Unix() >= session.TTL {
		return "", common.ErrTokenExpired
	}

	return session.Email, nil
}

// Issue creates a new session for email with a freshly generated opaque
// token and the configured validity window.
func (s *Service) Issue(ctx context.Context, email string) (*Session, error) {
	now := s.now().Unix()
	session := &Session{
		Token:     Token(uuid.NewString()),
		Email:     email,
		CreatedAt: now,
		TTL:       now + int64(s.validity.Seconds()),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return session, nil
}
