package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/finsync/internal/client/client"
	"github.com/dmitrijs2005/finsync/internal/client/config"
	"github.com/dmitrijs2005/finsync/internal/client/navbar"
	"github.com/dmitrijs2005/finsync/internal/client/services"
	"github.com/dmitrijs2005/finsync/internal/client/session"
	"github.com/dmitrijs2005/finsync/internal/client/store"
	"github.com/dmitrijs2005/finsync/internal/client/uploader"
	"github.com/dmitrijs2005/finsync/internal/common"
	"github.com/dmitrijs2005/finsync/internal/logging"
	"golang.org/x/sync/errgroup"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	db          *sql.DB
	store       store.Store
	api         client.Client
	session     *session.Container
	navbar      *navbar.NavBar
	authService services.AuthService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	mu       sync.Mutex
	route    services.Route
	userName string
	Mode     Mode
}

// NewApp opens the local store and wires every client component.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	st := store.NewSQLiteStore(db)

	api := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, func(ctx context.Context) (string, error) {
		return store.Token(ctx, st)
	})

	up, err := uploader.New(ctx, c.UploaderSettings(), api)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a, err := newApp(ctx, c, st, api, up, logger, os.Stdin, os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.db = db
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, st store.Store, api client.Client, up uploader.Uploader,
	logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {

	theme, err := navbar.LoadTheme(ctx, st, &navbar.Attributes{})
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	a := &App{
		config:  c,
		store:   st,
		api:     api,
		session: session.NewContainer(),
		logger:  logger,
		reader:  bufio.NewReader(in),
		out:     out,
		route:   services.RouteLogin,
	}

	a.navbar = &navbar.NavBar{
		Session: a.session,
		Images:  navbar.StoreImages{Store: st},
		Theme:   theme,
		SideBar: &session.SideBar{},
	}

	a.authService = services.NewAuthService(services.Deps{
		Client:    api,
		Store:     st,
		Session:   a.session,
		Uploader:  up,
		Navigator: a,
		Notifier:  terminalNotifier{w: out},
		Logger:    logger,
	})

	a.session.Subscribe(func(s session.State) {
		a.mu.Lock()
		a.userName = s.Name
		a.mu.Unlock()
	})

	return a, nil
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Navigate implements services.Navigator.
func (a *App) Navigate(to services.Route) {
	a.mu.Lock()
	a.route = to
	a.mu.Unlock()
	a.logger.Debug(context.Background(), "navigate", "route", string(to))
}

func (a *App) currentRoute() services.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsLoggedIn()
}

// Run restores the session, then runs the REPL and the online watcher
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	restored, err := a.authService.Bootstrap(ctx)
	if err != nil {
		return err
	}
	if restored {
		a.Navigate(services.RouteDashboard)
	} else {
		a.Navigate(services.RouteLogin)
	}
	a.logStoredKeys(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.StartOnlineStatusWatcher(gctx, a.config.OnlineCheckInterval)
	})

	g.Go(func() error {
		defer cancel()
		fmt.Fprintln(a.out, "Welcome to FinSync (type 'help' for commands)")
		runREPL(gctx, a, a.getStatus, a.reader, a.out)
		return nil
	})

	return g.Wait()
}

// StartOnlineStatusWatcher pings the server every interval and tracks
// whether it is reachable. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := a.api.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return nil
		}
	}
}

// logStoredKeys lists the keys (never the values) of the local store at
// debug level.
func (a *App) logStoredKeys(ctx context.Context) {
	all, err := a.store.All(ctx)
	if err != nil {
		a.logger.Warn(ctx, "cannot list local store", "error", err)
		return
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	a.logger.Debug(ctx, "local store", "keys", keys)
}

// canSubmit reports whether the form of flow f accepts a submission.
func (a *App) canSubmit(f *services.Flow) bool {
	if f.State().CanSubmit() {
		return true
	}
	fmt.Fprintln(a.out, "A request is already in progress.")
	return false
}

func (a *App) getStatus() string {
	submitting := !a.authService.LoginFlow().State().CanSubmit() ||
		!a.authService.SignupFlow().State().CanSubmit()

	a.mu.Lock()
	defer a.mu.Unlock()

	s := string(a.route)
	if a.userName != "" {
		s += " " + a.userName
	}
	if a.Mode != "" {
		s += " " + string(a.Mode)
	}
	if submitting {
		s += " submitting"
	}
	return fmt.Sprintf("(%s)", s)
}

// Header draws the navigation header.
func (a *App) Header(ctx context.Context) string {
	v, err := a.navbar.Render(ctx)
	if err != nil {
		a.logger.Warn(ctx, "header render failed", "error", err)
		return common.AppName
	}
	return v.String()
}

type terminalNotifier struct {
	w io.Writer
}

func (n terminalNotifier) Success(msg string) { fmt.Fprintln(n.w, "[ok] "+msg) }
func (n terminalNotifier) Error(msg string)   { fmt.Fprintln(n.w, "[error] "+msg) }
