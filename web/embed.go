// Package web embeds the site's HTML form markup. The form validator reads
// field rules straight from these files so the page and the server agree on
// what is required.
package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed forms/*.html
var forms embed.FS

// FormsFS returns a filesystem rooted at the embedded forms/ directory.
func FormsFS() fs.FS {
	sub, err := fs.Sub(forms, "forms")
	if err != nil {
		log.Fatalf("web.FormsFS: %v", err)
	}
	return sub
}
