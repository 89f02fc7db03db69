package cli

import (
	"context"
	"fmt"
	"strings"
)

// Subscribe asks for an email address and subscribes it to the newsletter.
// No account is needed.
func (a *App) Subscribe(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email to subscribe", a.out)
	if err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%q does not look like an email address", email)
	}
	if err := a.client.SubscribeNewsletter(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Subscribed!")
	return nil
}
