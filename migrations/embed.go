// Package migrations holds the goose SQL migrations for the oracle schema.
package migrations

import "embed"

// FS is handed to goose.NewProvider by cmd/api and testutil.
//
//go:embed *.sql
var FS embed.FS
