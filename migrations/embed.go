package migrations

import "embed"

// FS holds the goose migrations. They are applied from the root directory ".".
//
//go:embed *.sql
var FS embed.FS
