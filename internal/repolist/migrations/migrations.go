// Package migrations embeds the SQL files goose applies to the mirror schema.
package migrations

import "embed"

// Migrations holds the goose migration files.
//
//go:embed *.sql
var Migrations embed.FS
