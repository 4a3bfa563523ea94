// Package static embeds the stylesheet and browser script served under /static.
package static

import "embed"

//go:embed navbar.css js
var FS embed.FS
