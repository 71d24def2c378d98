// Package cli implements the interactive Shelfhub operator console: a small
// REPL over the typed API client, the session store, and the local
// preference store.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/shelfhub/shelfhub/internal/client/api"
	"github.com/shelfhub/shelfhub/internal/client/client"
	"github.com/shelfhub/shelfhub/internal/client/config"
	"github.com/shelfhub/shelfhub/internal/client/guard"
	"github.com/shelfhub/shelfhub/internal/client/prefs"
	"github.com/shelfhub/shelfhub/internal/client/session"
	"github.com/shelfhub/shelfhub/internal/logging"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Store
	prefs   *prefs.Store
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer

	// location is the console's analog of the browser location: the screen
	// the operator is "on". The transport's session-expired handler forces
	// it back to the login screen.
	mu       sync.Mutex
	location string
}

// NewApp wires the composition root: local database, transport, session
// store, and preference store. The session-expired action the transport
// needs is supplied here, keeping the transport free of UI concerns.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	repos, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local database: %w", err)
	}

	log := logging.NewDefault()

	a := &App{
		config:   cfg,
		log:      log,
		prefs:    prefs.NewStore(repos.LocalData),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		location: guard.HomePath,
	}

	baseURL := api.ResolveBaseURL(cfg.APIBaseURL, cfg.ServerURL)
	a.api = api.NewClient(baseURL, repos.LocalData, log,
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithSessionExpiredHandler(a.onSessionExpired),
	)

	a.session = session.NewStore(ctx, a.api.Auth(), repos.LocalData, log)
	return a, nil
}

// onSessionExpired runs after any request came back unauthorized. The
// transport has already cleared the persisted token; here we drop the
// in-memory session and send the operator to the login screen. Safe to run
// repeatedly: every step is idempotent.
func (a *App) onSessionExpired() {
	a.session.Logout(context.Background())
	a.navigate(guard.LoginPath)
	fmt.Fprintln(a.out, "Session expired, please log in again.")
}

func (a *App) navigate(path string) {
	a.mu.Lock()
	a.location = path
	a.mu.Unlock()
}

// Location returns the screen the operator is currently on.
func (a *App) Location() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.location
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// enter consults the route guard before a command tied to a screen runs.
// On denial it performs the guard's redirect and reports false.
func (a *App) enter(routeName string) bool {
	r := guard.Find(routeName)
	if r == nil {
		return false
	}

	d := guard.Decide(r.Meta, guard.StateOf(a.session))
	if d.Allow {
		a.navigate(r.Path)
		return true
	}

	a.navigate(d.RedirectTo)
	switch d.RedirectTo {
	case guard.LoginPath:
		fmt.Fprintln(a.out, "Please log in first.")
	default:
		fmt.Fprintln(a.out, "Admin privileges required.")
	}
	return false
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Shelfhub console (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) status() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s/%s)", u.Username, u.Role)
}
