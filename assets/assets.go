// Package assets bundles files shipped with the binary.
package assets

import "embed"

// DefaultConfigPath is the bundled default configuration document within FS.
const DefaultConfigPath = "default_config.json"

// FS holds the bundled assets.
//
//go:embed default_config.json
var FS embed.FS
