package web

import "embed"

// Templates holds the server-rendered detail pages.
//
//go:embed templates/*.html
var Templates embed.FS
