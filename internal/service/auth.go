package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"pressdesk.app/unassigned/common/id"
	"pressdesk.app/unassigned/core/config"
	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/store"
)

var (
	ErrInvalidCode     = errors.New("invalid authorization code")
	ErrAccountNotFound = errors.New("account not found")
	ErrSessionExpired  = errors.New("session expired")
)

type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*model.Account, *model.Session, error)
	ValidateSession(ctx context.Context, sessionID int64) (*model.Account, error)
	Logout(ctx context.Context, sessionID int64) error
}

type authService struct {
	accountStore store.AccountStore
	sessionStore store.SessionStore
	cfg          config.WorkOSConfig
}

func NewAuthService(
	accountStore store.AccountStore,
	sessionStore store.SessionStore,
	cfg config.WorkOSConfig,
) AuthService {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &authService{
		accountStore: accountStore,
		sessionStore: sessionStore,
		cfg:          cfg,
	}
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    s.cfg.ClientID,
		RedirectURI: s.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url.String(), nil
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*model.Account, *model.Session, error) {
	authResponse, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: s.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, nil, ErrInvalidCode
	}

	workosUser := authResponse.User

	account := &model.Account{
		ID:       id.New(),
		Name:     buildAccountName(workosUser),
		Email:    workosUser.Email,
		WorkOSID: &workosUser.ID,
	}

	if err := s.accountStore.UpsertByWorkOSID(ctx, account); err != nil {
		slog.ErrorContext(ctx, "failed to upsert account",
			"error", err,
			"email", account.Email,
			"workos_id", workosUser.ID,
		)
		return nil, nil, fmt.Errorf("upserting account: %w", err)
	}

	session := &model.Session{
		ID:        id.New(),
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"account_id", account.ID,
		)
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "account authenticated",
		"account_id", account.ID,
		"email", account.Email,
		"session_id", session.ID,
	)

	return account, session, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.Account, error) {
	session, err := s.sessionStore.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	account, err := s.accountStore.GetByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return account, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func buildAccountName(user usermanagement.User) string {
	if user.FirstName != "" && user.LastName != "" {
		return user.FirstName + " " + user.LastName
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.LastName != "" {
		return user.LastName
	}
	return user.Email
}
