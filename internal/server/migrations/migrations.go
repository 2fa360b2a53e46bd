// Package migrations embeds the SQL schema for the PostgreSQL backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
