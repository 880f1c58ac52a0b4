package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var files embed.FS

// New returns the engine for the embedded page templates. Pages render
// inside "layouts/main".
func New() *html.Engine {
	templates, err := fs.Sub(files, "templates")
	if err != nil {
		panic(fmt.Sprintf("views: %v", err))
	}

	engine := html.NewFileSystem(http.FS(templates), ".html")
	engine.AddFunc("inc", func(i int) int {
		return i + 1
	})
	engine.AddFunc("percent", func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	})

	return engine
}
