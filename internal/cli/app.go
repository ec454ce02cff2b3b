package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/shoplens/shoplens/internal/config"
	"github.com/shoplens/shoplens/internal/dashboard/insights"
	"github.com/shoplens/shoplens/internal/dashboard/rates"
	"github.com/shoplens/shoplens/internal/httpx"
	"github.com/shoplens/shoplens/internal/logging"
	"github.com/shoplens/shoplens/internal/repositories/sessionstate"
	"github.com/shoplens/shoplens/internal/repositories/users"
	"github.com/shoplens/shoplens/internal/services"
	"github.com/shoplens/shoplens/internal/session"
	"github.com/shoplens/shoplens/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	store    users.Repository
	rates    *rates.Service
	insights *insights.Service
	log      logging.Logger
	reader   *bufio.Reader
	expired  atomic.Bool
	dbs      []*sql.DB
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	localDB, err := storage.Open(ctx, storage.DriverSQLite, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	app := &App{config: c, log: log, reader: bufio.NewReader(os.Stdin), dbs: []*sql.DB{localDB}}

	var store users.Repository = users.NewSQLiteRepository(localDB)
	if c.PostgresDSN != "" {
		pg, err := storage.Open(ctx, storage.DriverPostgres, c.PostgresDSN)
		if err != nil {
			localDB.Close()
			return nil, err
		}
		store = users.NewPostgresRepository(pg)
		app.dbs = append(app.dbs, pg)
	}

	// Session state stays on the device even when the credential store is
	// remote.
	sm := session.NewManager(
		sessionstate.NewMemoryStore(),
		sessionstate.NewSQLiteStore(localDB),
		[]byte(c.SessionSecret),
		log,
		session.WithInactivityTimeout(c.InactivityTimeout),
		session.WithExpiryCallback(func() { app.expired.Store(true) }),
	)
	app.auth = services.NewAuthService(store, sm, log)
	app.store = store

	app.rates = rates.NewService(httpx.New(c.ExchangeRateAPIAddr, c.HTTPTimeout, c.HTTPRetryAttempts, c.HTTPRetryDelay, log))
	app.insights = insights.NewService(httpx.New(c.PlaceholderAPIAddr, c.HTTPTimeout, c.HTTPRetryAttempts, c.HTTPRetryDelay, log))

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if user := a.auth.Restore(ctx); user != nil {
		fmt.Printf("Welcome back, %s!\n", user.Name)
	}

	fmt.Println("ShopLens CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close stops the session watchdog and releases database handles. A
// remembered session survives Close and is restored on the next start.
func (a *App) Close() {
	a.auth.Close()
	for _, db := range a.dbs {
		_ = db.Close()
	}
}

func (a *App) status() string {
	if user := a.auth.CurrentUser(); user != nil {
		return user.Email
	}
	return "anonymous"
}

func (a *App) isLoggedIn() bool { return a.auth.IsAuthenticated() }

func (a *App) noteActivity() { a.auth.TouchActivity() }

// consumeExpiry reports whether the inactivity watchdog fired since the
// last check, clearing the flag.
func (a *App) consumeExpiry() bool { return a.expired.Swap(false) }

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Println("Please log in first.")
	return false
}
