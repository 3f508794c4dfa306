package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/okunev/musicbox/internal/common"
	"github.com/okunev/musicbox/internal/server/sessions"
)

// NormalizeEmail trims surrounding whitespace and lower-cases an email so
// it can serve as a stable partition key. The same normalization is applied
// at registration and login, which keeps the session email aligned with the
// subscription partition key.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

type Service struct {
	repo     Repository
	sessions *sessions.Service
}

func NewService(repo Repository, sessionService *sessions.Service) *Service {
	return &Service{repo: repo, sessions: sessionService}
}

// Register stores a new account. The uniqueness check is check-then-put,
// not atomic.
func (s *Service) Register(ctx context.Context, email, userName, password string) error {
	email = NormalizeEmail(email)

	_, err := s.repo.Get(ctx, email)
	if err == nil {
		return common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error checking account: %w", err)
	}

	account := &Account{
		Email:    email,
		UserName: userName,
		Password: password,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return fmt.Errorf("error creating account: %w", err)
	}
	return nil
}

// Login checks the credential and, on success, issues a new session.
// Passwords are stored and compared as-is.
func (s *Service) Login(ctx context.Context, email, password string) (*sessions.Session, error) {
	account, err := s.repo.Get(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error fetching account: %w", err)
	}

	if account.Password != password {
		return nil, common.ErrorUnauthorized
	}

	return s.sessions.Issue(ctx, account.Email)
}

// Profile returns the display name for an authenticated email, falling
// back to the email itself when no user name was stored.
func (s *Service) Profile(ctx context.Context, email string) (string, error) {
	account, err := s.repo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("error fetching account: %w", err)
	}

	if account.UserName == "" {
		return account.Email, nil
	}
	return account.UserName, nil
}
