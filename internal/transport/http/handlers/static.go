package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPA serves the client directory, falling back to index.html for any path
// that is not a real file so client-side routing keeps working.
func SPA(clientDir string) http.Handler {
	fileServer := http.FileServer(http.Dir(clientDir))
	index := filepath.Join(clientDir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
		if rel != "" {
			if info, err := os.Stat(filepath.Join(clientDir, rel)); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFile(w, r, index)
	})
}
