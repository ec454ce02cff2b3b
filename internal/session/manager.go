// Package session tracks who is logged in right now and enforces the
// persistence and inactivity rules around it.
//
// Two scope stores back a session. The ephemeral scope lives for the
// process; the durable scope survives restarts and is only honored when the
// persisted remember-me flag agrees, since that flag is the user's explicit
// consent to keep a session across restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/shoplens/shoplens/internal/common"
	"github.com/shoplens/shoplens/internal/logging"
	"github.com/shoplens/shoplens/internal/models"
	"github.com/shoplens/shoplens/internal/repositories/sessionstate"
)

// Scope store keys.
const (
	keyUser       = "user"
	keyRememberMe = "rememberMe"
)

// DefaultInactivityTimeout force-expires a session after half an hour
// without observed activity.
const DefaultInactivityTimeout = 30 * time.Minute

// Manager owns the current session: the authenticated user, the remember-me
// preference, and the inactivity watchdog.
type Manager struct {
	ephemeral sessionstate.Store
	durable   sessionstate.Store
	secret    []byte
	timeout   time.Duration
	log       logging.Logger
	onExpired func()

	mu           sync.Mutex
	current      *models.User
	rememberMe   bool
	lastActivity time.Time
	timer        *time.Timer
}

type Option func(*Manager)

// WithExpiryCallback registers fn to run after the watchdog clears an idle
// session. It is called outside the manager's lock.
func WithExpiryCallback(fn func()) Option {
	return func(m *Manager) { m.onExpired = fn }
}

// WithInactivityTimeout overrides DefaultInactivityTimeout.
func WithInactivityTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// NewManager builds a Manager over the two scope stores. secret signs the
// durable session artifact so tampering is detected on restore.
func NewManager(ephemeral, durable sessionstate.Store, secret []byte, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		ephemeral: ephemeral,
		durable:   durable,
		secret:    secret,
		timeout:   DefaultInactivityTimeout,
		log:       log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Establish makes user the current session, arms the watchdog, and persists
// according to rememberMe: the durable scope is written only when the user
// opted in, and stale durable artifacts are removed otherwise. A persistence
// failure leaves the in-memory session active; callers decide how loudly to
// report it.
func (m *Manager) Establish(ctx context.Context, user models.User, rememberMe bool) error {
	m.mu.Lock()
	u := user
	m.current = &u
	m.rememberMe = rememberMe
	m.lastActivity = time.Now()
	m.armLocked()
	m.mu.Unlock()

	return m.persist(ctx, user, rememberMe)
}

// Restore attempts to resume a session at startup. The ephemeral scope wins;
// absent that, the durable scope is used only when the remember-me flag is
// set. Corrupt, orphaned, or tampered state results in a full clear and a
// nil return, never an error.
func (m *Manager) Restore(ctx context.Context) *models.User {
	data, err := m.ephemeral.Get(ctx, keyUser)
	if err != nil {
		m.log.Warn(ctx, "ephemeral scope unavailable, starting logged out", "error", err)
		return nil
	}
	if data != nil {
		var u models.User
		if json.Unmarshal(data, &u) != nil || u.Email == "" {
			m.clearCorrupt(ctx, "ephemeral user record unreadable")
			return nil
		}
		m.adopt(ctx, u, m.durableFlagSet(ctx))
		return &u
	}

	flagRaw, ferr := m.durable.Get(ctx, keyRememberMe)
	tokenRaw, terr := m.durable.Get(ctx, keyUser)
	if ferr != nil || terr != nil {
		m.log.Warn(ctx, "durable scope unavailable, starting logged out",
			"flagError", ferr, "userError", terr)
		return nil
	}

	remembered := string(flagRaw) == "true"
	hasUser := len(tokenRaw) > 0
	switch {
	case !remembered && !hasUser:
		return nil
	case remembered != hasUser:
		// An orphaned record or flag means the pair no longer agrees;
		// purge rather than honor it.
		m.clearCorrupt(ctx, "remember-me flag and stored session disagree")
		return nil
	}

	u, err := m.parseSession(string(tokenRaw))
	if err != nil {
		m.clearCorrupt(ctx, "durable session failed validation")
		return nil
	}

	m.adopt(ctx, *u, true)
	// Repopulate the ephemeral scope so in-process restores stay cheap.
	if data, err := json.Marshal(u); err == nil {
		_ = m.ephemeral.Set(ctx, keyUser, data)
	}
	return u
}

// Clear logs the session out and removes every persisted artifact in both
// scopes. Idempotent.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	m.rememberMe = false
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.mu.Unlock()

	if err := m.ephemeral.Delete(ctx, keyUser); err != nil {
		m.log.Warn(ctx, "clearing ephemeral session", "error", err)
	}
	if err := m.durable.Delete(ctx, keyUser); err != nil {
		m.log.Warn(ctx, "clearing durable session", "error", err)
	}
	if err := m.durable.Delete(ctx, keyRememberMe); err != nil {
		m.log.Warn(ctx, "clearing remember-me flag", "error", err)
	}
}

// TouchActivity records user interaction and re-arms the watchdog. A no-op
// without an active session.
func (m *Manager) TouchActivity() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}
	m.lastActivity = time.Now()
	m.armLocked()
}

// Current returns a copy of the authenticated user, or nil.
func (m *Manager) Current() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// LastActivityAt reports when user interaction was last observed.
func (m *Manager) LastActivityAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastActivity
}

// Close tears down the watchdog without logging the user out. Meant for
// application shutdown; persisted state is left for the next start.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Manager) persist(ctx context.Context, user models.User, rememberMe bool) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding session user: %w", err)
	}
	if err := m.ephemeral.Set(ctx, keyUser, data); err != nil {
		return err
	}

	if !rememberMe {
		// A session-only login must not leave durable artifacts behind.
		if err := m.durable.Delete(ctx, keyUser); err != nil {
			return err
		}
		return m.durable.Delete(ctx, keyRememberMe)
	}

	token, err := m.signSession(user)
	if err != nil {
		return fmt.Errorf("signing session: %w", err)
	}
	// Written as a pair: a token without its flag (or vice versa) would read
	// as corruption on the next restore.
	return m.durable.SetMany(ctx, map[string][]byte{
		keyUser:       []byte(token),
		keyRememberMe: []byte("true"),
	})
}

func (m *Manager) adopt(ctx context.Context, user models.User, rememberMe bool) {
	m.mu.Lock()
	u := user
	m.current = &u
	m.rememberMe = rememberMe
	m.lastActivity = time.Now()
	m.armLocked()
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "user", user.ID, "rememberMe", rememberMe)
}

func (m *Manager) durableFlagSet(ctx context.Context) bool {
	flag, err := m.durable.Get(ctx, keyRememberMe)
	return err == nil && string(flag) == "true"
}

func (m *Manager) clearCorrupt(ctx context.Context, reason string) {
	m.log.Warn(ctx, "clearing session state", "error", common.ErrCorruptSessionState, "reason", reason)
	m.Clear(ctx)
}

// armLocked re-arms the single watchdog timer. Callers must hold mu.
func (m *Manager) armLocked() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.timeout, m.expire)
}

func (m *Manager) expire() {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return
	}
	userID := m.current.ID
	m.mu.Unlock()

	ctx := context.Background()
	m.log.Info(ctx, "session expired", "error", common.ErrSessionExpired, "user", userID)
	m.Clear(ctx)

	if m.onExpired != nil {
		m.onExpired()
	}
}
