// Package migrations embeds the postgres schema migrations applied at startup by the postgres storage driver.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
