// Package web embeds the page template and the static web assets into the
// binary. Placing the embed here (next to the static/ directory) avoids the
// Go toolchain restriction that //go:embed paths cannot use "..".
package web

import (
	"embed"
	"io/fs"
)

// Placeholder is the token of [Template] replaced by the generated name.
const Placeholder = "EXAMPLENAME"

//go:embed static
var embedded embed.FS

// Template is the HTML page served by the /{number}/ route.
//
//go:embed template.html
var Template string

// StaticFiles is an fs.FS rooted at web/static/.
// Consumers can serve it directly with http.FileServer(http.FS(StaticFiles)).
var StaticFiles, _ = fs.Sub(embedded, "static")
