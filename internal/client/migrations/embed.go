// Package migrations embeds the goose migrations for the local state
// database (session keys and cache entries).
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
