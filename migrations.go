// Package easyrent holds assets shared by the binaries of the service.
package easyrent

import "embed"

// Migrations contains the goose SQL migrations of the application schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
