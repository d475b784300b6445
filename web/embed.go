// Package web provides the embedded editor page and its static assets.
package web

import "embed"

// FS contains templates/index.html and the static JS/CSS served under /static/.
//
//go:embed templates static
var FS embed.FS
