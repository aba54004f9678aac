package cli

import (
	"bufio"
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vipclub/vipclub-cli/internal/client/api"
	"github.com/vipclub/vipclub-cli/internal/client/config"
	"github.com/vipclub/vipclub-cli/internal/client/repositories/metadata"
	"github.com/vipclub/vipclub-cli/internal/client/routing"
	"github.com/vipclub/vipclub-cli/internal/client/session"
	"github.com/vipclub/vipclub-cli/internal/client/store"
	"github.com/vipclub/vipclub-cli/internal/common"
	"github.com/vipclub/vipclub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	client  api.Client
	session *session.Manager
	guard   *routing.Guard
	repos   *store.Repositories
	log     logging.Logger
	reader  *bufio.Reader

	// mode is written by the connectivity watcher goroutine and read by the
	// REPL prompt.
	modeMu sync.Mutex
	mode   Mode
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := store.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout)

	installID, err := ensureInstallationID(ctx, repos.Metadata)
	if err != nil {
		return nil, err
	}
	apiClient.SetInstallationID(installID)

	sess := session.NewManager(apiClient, repos.Metadata, log)

	app := &App{
		config:  c,
		client:  apiClient,
		session: sess,
		repos:   repos,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}

	// The guard's notion of a screen drives the REPL prompt; redirects are
	// logged the way the mobile app performs navigation.
	app.guard = routing.NewGuard(routing.DefaultTable(), "index", func(r routing.Route) {
		log.Info(ctx, "navigating", "route", string(r))
	})
	sess.Subscribe(app.guard.OnState)

	return app, nil
}

// ensureInstallationID reads the per-install identifier, generating and
// persisting one on first run.
func ensureInstallationID(ctx context.Context, meta metadata.Repository) (string, error) {
	v, err := meta.Get(ctx, common.InstallationIDKey)
	if err != nil {
		return "", err
	}
	if len(v) > 0 {
		return string(v), nil
	}

	id := uuid.NewString()
	if err := meta.Set(ctx, common.InstallationIDKey, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// Run bootstraps the persisted session, starts the connectivity watcher,
// and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	defer a.repos.DB.Close()

	a.session.Bootstrap(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().Kind() == session.KindAuthenticated
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Health(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
