package api

import "errors"

var (
	// ErrUnavailable marks connection failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401/403 responses and calls attempted without a token.
	ErrUnauthorized = errors.New("not authorized")

	// ErrNotFound marks 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrStream marks a failure of the AI generation push channel.
	ErrStream = errors.New("generation stream failed")
)
