package api

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// adminPages serves the admin panel build from dir. Paths with no file
// behind them get index.html so client-side routes resolve.
func adminPages(dir string) http.Handler {
	if dir == "" {
		return http.NotFoundHandler()
	}

	files := http.FileServer(http.Dir(dir))
	return http.StripPrefix("/admin", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); errors.Is(err, fs.ErrNotExist) && !strings.Contains(path.Base(name), ".") {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	}))
}
