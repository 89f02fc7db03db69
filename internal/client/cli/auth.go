package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/elivanov/inkwell/internal/client/api"
	"github.com/elivanov/inkwell/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// requireLogin guards commands that need an authenticated session. It fails
// locally, before any request is made.
func (a *App) requireLogin() error {
	if !a.store.LoggedIn() {
		return api.ErrUnauthorized
	}
	return nil
}

// Register prompts for name, email, and password and creates a new account.
// On success the returned session is adopted and persisted, so the user is
// logged in immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.store.Start()
	user, token, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		a.store.Fail(err)
		return err
	}
	return a.adoptSession(ctx, user, token)
}

// Login prompts for credentials and authenticates against the backend.
// On success the session is persisted so the next start skips the login.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	a.store.Start()
	user, token, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.store.Fail(err)
		return err
	}
	return a.adoptSession(ctx, user, token)
}

func (a *App) adoptSession(ctx context.Context, user *models.User, token string) error {
	a.store.Succeed(user, token)
	a.client.SetToken(token)
	if err := a.creds.Save(ctx, user, token); err != nil {
		log.Printf("could not persist the session: %s", err.Error())
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Name)
	return nil
}

// Logout drops the in-memory session, the client token, and the persisted
// credentials.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout()
	a.client.ClearToken()
	if err := a.creds.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
