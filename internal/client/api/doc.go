// Package api contains the transport layer of the Inkwell client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     backend's REST surface: article CRUD, login/register, image upload,
//     newsletter subscription, the AI generation stream, and the cover-image
//     load probe.
//  2. A concrete HTTP implementation (see HTTPClient) that attaches the
//     bearer token once installed, stamps mutating calls with a request id,
//     and maps response statuses to sentinel errors.
//  3. GenerationStream, the pull-style consumer of the server-push
//     text/event-stream channel used for AI article generation.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrStream.
// Nothing in this package retries; every retry is a user-initiated repeat.
//
// Concurrency & Contexts
//
// All operations accept context.Context and honor cancellation. A
// GenerationStream is owned by a single consumer and is not safe for
// concurrent use.
package api
