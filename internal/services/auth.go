// Package services contains the application services of the ShopLens
// client. This file implements the auth facade: login, register, logout,
// and the authentication state the rest of the dashboard reads.
package services

import (
	"context"
	"errors"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/shoplens/shoplens/internal/common"
	"github.com/shoplens/shoplens/internal/cryptox"
	"github.com/shoplens/shoplens/internal/logging"
	"github.com/shoplens/shoplens/internal/models"
	"github.com/shoplens/shoplens/internal/repositories/users"
	"github.com/shoplens/shoplens/internal/session"
)

// AuthService is the single auth entry point the dashboard depends on.
//
// Contract:
//   - Login / Register report success as a bare bool. The caller cannot
//     tell an unknown email from a wrong password; the distinguishing
//     detail goes to the logger only.
//   - Registration auto-establishes a remembered session for the new user.
//   - At most one credential operation is in flight at a time; a concurrent
//     second call fails immediately.
//   - CurrentUser returns a credential-stripped copy.
type AuthService interface {
	Login(ctx context.Context, email, password string, rememberMe bool) bool
	Register(ctx context.Context, name, email, password string) bool
	Logout(ctx context.Context)
	Restore(ctx context.Context) *models.User
	TouchActivity()
	CurrentUser() *models.User
	IsAuthenticated() bool
	IsLoading() bool
	Close()
}

// authService composes the credential store, the codec, and the session
// manager behind the AuthService contract.
type authService struct {
	store   users.Repository
	session *session.Manager
	log     logging.Logger
	loading atomic.Bool
}

// NewAuthService constructs an AuthService over the given store and session
// manager.
func NewAuthService(store users.Repository, sm *session.Manager, log logging.Logger) AuthService {
	return &authService{store: store, session: sm, log: log}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 8

// beginOp claims the single in-flight operation slot.
func (a *authService) beginOp(ctx context.Context) bool {
	if !a.loading.CompareAndSwap(false, true) {
		a.log.Warn(ctx, "rejecting call", "error", common.ErrOperationInFlight)
		return false
	}
	return true
}

func (a *authService) endOp() { a.loading.Store(false) }

func (a *authService) Login(ctx context.Context, email, password string, rememberMe bool) bool {
	if !a.beginOp(ctx) {
		return false
	}
	defer a.endOp()

	if !emailPattern.MatchString(email) {
		a.log.Warn(ctx, "login rejected", "error", common.ErrInvalidEmailFormat)
		return false
	}

	user, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password produce identical results for
		// the caller; only the log knows which it was.
		if errors.Is(err, common.ErrNotFound) {
			a.log.Info(ctx, "login failed", "reason", "unknown email")
		} else {
			a.log.Error(ctx, "login failed", "error", err)
		}
		return false
	}

	if !cryptox.VerifyCredential([]byte(password), user.Credential) {
		a.log.Info(ctx, "login failed", "reason", "credential mismatch", "user", user.ID)
		return false
	}

	if err := a.session.Establish(ctx, *user, rememberMe); err != nil {
		a.log.Warn(ctx, "session not fully persisted", "error", err, "user", user.ID)
	}
	a.log.Info(ctx, "login successful", "user", user.ID, "rememberMe", rememberMe)
	return true
}

func (a *authService) Register(ctx context.Context, name, email, password string) bool {
	if !a.beginOp(ctx) {
		return false
	}
	defer a.endOp()

	if name == "" {
		a.log.Warn(ctx, "registration rejected", "reason", "empty name")
		return false
	}
	if !emailPattern.MatchString(email) {
		a.log.Warn(ctx, "registration rejected", "error", common.ErrInvalidEmailFormat)
		return false
	}
	if len(password) < minPasswordLength {
		a.log.Warn(ctx, "registration rejected", "error", common.ErrWeakPassword)
		return false
	}

	credential, err := cryptox.DeriveCredential([]byte(password))
	if err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return false
	}

	user := &models.User{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       name,
		Credential: credential,
		Role:       models.RoleUser,
		CreatedAt:  time.Now().UTC(),
	}

	if err := a.store.Add(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			a.log.Info(ctx, "registration failed", "error", err)
		} else {
			a.log.Error(ctx, "registration failed", "error", err)
		}
		return false
	}

	// New accounts start a remembered session, matching the sign-up flow.
	if err := a.session.Establish(ctx, *user, true); err != nil {
		a.log.Warn(ctx, "session not fully persisted", "error", err, "user", user.ID)
	}
	a.log.Info(ctx, "registration successful", "user", user.ID)
	return true
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Clear(ctx)
	a.log.Info(ctx, "logged out")
}

// Restore resumes a persisted session at startup, if any.
func (a *authService) Restore(ctx context.Context) *models.User {
	if !a.beginOp(ctx) {
		return nil
	}
	defer a.endOp()

	user := a.session.Restore(ctx)
	if user == nil {
		return nil
	}
	public := user.Public()
	return &public
}

func (a *authService) TouchActivity() { a.session.TouchActivity() }

func (a *authService) CurrentUser() *models.User {
	user := a.session.Current()
	if user == nil {
		return nil
	}
	public := user.Public()
	return &public
}

func (a *authService) IsAuthenticated() bool { return a.session.Current() != nil }

func (a *authService) IsLoading() bool { return a.loading.Load() }

func (a *authService) Close() { a.session.Close() }
