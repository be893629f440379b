package migrations

import "embed"

// FS contains the scoreboard schema migrations.
//
//go:embed *.sql
var FS embed.FS
