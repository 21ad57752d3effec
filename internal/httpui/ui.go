package httpui

import (
	"embed"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

//go:embed static/*
var embedded embed.FS

// Handler serves the embedded page assets. Paths are relative to the
// static root ("/page.css").
func Handler() (http.Handler, error) {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		return nil, err
	}

	_ = mime.AddExtensionType(".css", "text/css; charset=utf-8")
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	fileServer := http.FileServer(http.FS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" || !exists(sub, name) {
			http.NotFound(w, r)
			return
		}

		setCacheHeaders(w, name)
		fileServer.ServeHTTP(w, r)
	}), nil
}

func exists(fsys fs.FS, name string) bool {
	st, err := fs.Stat(fsys, name)
	return err == nil && !st.IsDir()
}

func setCacheHeaders(w http.ResponseWriter, name string) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".css", ".svg", ".png", ".ico", ".woff2":
		w.Header().Set("Cache-Control", "public, max-age=3600")
	default:
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
}
