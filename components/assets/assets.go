package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:static
var staticFiles embed.FS

func DistFS() fs.FS {
	sub, _ := fs.Sub(staticFiles, "static")
	return sub
}
