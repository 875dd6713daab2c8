// Package migrations embeds the goose SQL migrations so the server, the CLI
// and the integration tests apply the exact same schema.
package migrations

import "embed"

// FS holds every *.sql migration, ordered by goose version prefix.
//
//go:embed *.sql
var FS embed.FS
