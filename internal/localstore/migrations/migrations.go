// Package migrations embeds the goose migration files describing the local
// SQLite schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
