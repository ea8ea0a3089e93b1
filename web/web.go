// Package web holds the page shell served to the browser.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var content embed.FS

// Static returns the page assets rooted at the static directory.
func Static() fs.FS {
	static, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return static
}
