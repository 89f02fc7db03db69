package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/elivanov/inkwell/internal/client/api"
	"github.com/elivanov/inkwell/internal/client/config"
	"github.com/elivanov/inkwell/internal/client/feed"
	"github.com/elivanov/inkwell/internal/client/models"
	"github.com/elivanov/inkwell/internal/client/session"
)

// App ties the REST client, the session, and the feed together behind the
// REPL command surface.
type App struct {
	config *config.Config
	client api.Client
	store  *session.Store
	creds  *session.CredentialStore

	feed     *feed.Feed
	articles []models.Article

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	creds, err := session.Open(ctx, c.CredentialsPath)
	if err != nil {
		log.Printf("error opening credential store: %s", err.Error())
		return nil, err
	}

	return &App{
		config: c,
		client: api.NewHTTPClient(c.BackendBaseURL, c.RequestTimeout),
		store:  session.NewStore(),
		creds:  creds,
		feed:   feed.New(feed.DefaultPageSize),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.LoggedIn()
}

// restoreSession rehydrates the saved session, if any, without a network
// round trip. An expired token is discarded silently.
func (a *App) restoreSession(ctx context.Context) {
	if err := a.store.RestoreFrom(ctx, a.creds); err != nil {
		log.Printf("session restore failed: %s", err.Error())
		return
	}
	if a.store.LoggedIn() {
		a.client.SetToken(a.store.Token())
		log.Printf("Welcome back, %s", a.store.User().Name)
	}
}

// Run restores the session, loads the feed, and blocks in the REPL until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.creds.Close()
	a.restoreSession(ctx)
	a.Root(ctx)
}

func (a *App) getStatus() string {
	if u := a.store.User(); u != nil {
		return "(" + u.Name + ") "
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to Inkwell CLI (type 'help' for commands)")

	if err := a.Refresh(ctx); err != nil {
		log.Printf("could not load the feed: %s", err.Error())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
