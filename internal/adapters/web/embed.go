// Package web serves the JSON API and an embedded browser page over HTTP.
package web

import "embed"

//go:embed static/index.html
var staticFS embed.FS
