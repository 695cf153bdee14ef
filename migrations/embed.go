// Package migrations embeds the SQL migrations of the shop schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
