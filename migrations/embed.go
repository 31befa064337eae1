// Package migrations embeds the goose SQL migrations of the checkout store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
