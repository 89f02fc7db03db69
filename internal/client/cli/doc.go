// Package cli provides the interactive Inkwell command-line client.
//
// It wires configuration, the persisted session, the REST API client, and an
// interactive REPL for browsing and authoring blog articles. Typical flow:
// restore a saved session, fetch the article feed, and execute user commands.
//
// Key features:
//   - Login / Register / Logout with a session persisted across restarts
//   - Feed browsing with search, category, author, and sort filters
//   - Incremental reveal of the filtered feed ("more")
//   - Article detail view, in-place editing, and deletion by the author
//   - A drafting mode with markdown/rich tabs, AI text generation streamed
//     fragment by fragment, and AI or uploaded cover images
//   - Newsletter subscription
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
