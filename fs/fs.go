// Package appfs exposes embedded application assets, notably the database
// migration scripts consumed by goose.
package appfs

import "embed"

//go:embed migrations
var FS embed.FS
