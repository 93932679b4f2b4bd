package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"
)

// PlaceholderImage replaces post images that fail to load.
const PlaceholderImage = "https://placehold.co/400x300/e0e0e0/555555?text=Image+unavailable"

//go:embed views static
var content embed.FS

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(content, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// Static serves stylesheets and other assets.
func Static() http.FileSystem {
	return http.FS(mustSub("static"))
}

// NewEngine builds the view engine over the embedded templates.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(mustSub("views")), ".html")
	engine.AddFunc("date", func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("02/01/2006 15:04")
	})
	engine.AddFunc("join", strings.Join)
	engine.AddFunc("placeholder", func() string { return PlaceholderImage })
	engine.AddFunc("seq", func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	})
	engine.AddFunc("at", func(items []string, i int) string {
		if i < len(items) {
			return items[i]
		}
		return ""
	})
	return engine
}
