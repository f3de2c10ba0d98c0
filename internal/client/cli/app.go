package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/blogit-app/blogit-cli/internal/client/api"
	"github.com/blogit-app/blogit-cli/internal/client/cache"
	"github.com/blogit-app/blogit-cli/internal/client/config"
	"github.com/blogit-app/blogit-cli/internal/client/services"
	"github.com/blogit-app/blogit-cli/internal/client/session"
	"github.com/blogit-app/blogit-cli/internal/client/store"
	"github.com/blogit-app/blogit-cli/internal/logging"
)

// App is the interactive BlogIt client. It owns the wiring: local state
// database, session gate, API client, and the cache-aware services the
// command handlers call.
type App struct {
	config   *config.Config
	gate     *session.Gate
	blogs    *services.BlogService
	profiles *services.ProfileService
	log      logging.Logger
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.StateDSN)
	if err != nil {
		log.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	storage := session.NewSQLiteStorage(db)
	routes := api.Routes{AuthPrefix: cfg.AuthPrefix, APIPrefix: cfg.APIPrefix}
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, routes, storage)

	gate := session.NewGate(apiClient, storage, log)
	cacheStore := cache.NewSQLiteStore(db)

	return &App{
		config:   cfg,
		gate:     gate,
		blogs:    services.NewBlogService(apiClient, cacheStore, cfg.CacheTTL, log),
		profiles: services.NewProfileService(apiClient, cacheStore, gate, cfg.CacheTTL, log),
		log:      log,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the command loop and releases the state database on exit.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return !a.gate.Current(ctx).Anonymous()
}
