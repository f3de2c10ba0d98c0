// Package cli implements the interactive BlogIt client: a REPL that
// renders list, detail, profile, and form views on top of the session
// gate and the cache-aware services. Protected views pass through the
// guard; anonymous users are forwarded to the login view and, after a
// successful login, land on the blogs list.
package cli
