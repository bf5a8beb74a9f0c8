package migrations

import "embed"

// FS holds the versioned SQL migrations of the palette store.
//
//go:embed *.sql
var FS embed.FS
