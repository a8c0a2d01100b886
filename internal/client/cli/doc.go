// Package cli provides the interactive command-line client for the blog
// platform.
//
// It wires configuration, token storage, the API client, and the session,
// posts, and categories stores into an interactive REPL. Typical flow:
// restore a persisted session, then execute user commands.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - Posts: list, show, create, edit, delete
//   - Categories: list, create, rename, delete
//
// Commands that mutate server state require a logged-in session; read
// commands do not. The REPL is started via App.Run(ctx), which blocks until
// the user exits.
package cli
