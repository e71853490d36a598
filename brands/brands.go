// Package brands embeds the built-in brand directories.
package brands

import "embed"

// FS holds one directory per built-in brand, each with a brand.yaml
//
//go:embed wecare pharmaplus
var FS embed.FS
