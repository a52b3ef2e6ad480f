// Package leveldata provides embedded level definitions and utilities for
// loading them.
package leveldata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
