package handlers

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path"
)

// StaticHandler serves the landing page and the static and dist directories
type StaticHandler struct {
	indexFile string
	static    http.Handler
	dist      http.Handler
}

// NewStaticHandler creates a new StaticHandler
func NewStaticHandler(staticDir, distDir, indexFile string) *StaticHandler {
	return &StaticHandler{
		indexFile: indexFile,
		static:    http.StripPrefix("/static", serveFiles(filesOnly{http.Dir(staticDir)})),
		dist:      http.StripPrefix("/dist", serveFiles(filesOnly{http.Dir(distDir)})),
	}
}

// Index handles GET /
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	info, err := os.Stat(h.indexFile)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeFile(w, r, h.indexFile)
}

// Static handles GET /static/*
func (h *StaticHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}

// Dist handles GET /dist/*
func (h *StaticHandler) Dist(w http.ResponseWriter, r *http.Request) {
	h.dist.ServeHTTP(w, r)
}

// serveFiles answers with the named file as-is. Unlike http.FileServer it
// never redirects, so a request for .../index.html gets that file.
func serveFiles(root http.FileSystem) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)

		f, err := root.Open(name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, fs.ErrPermission) {
				log.Printf("Error opening %s: %v", name, err)
			}
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			log.Printf("Error reading %s: %v", name, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	})
}

// filesOnly reports directories as missing so they answer 404.
// http.Dir already rejects paths that climb out of the root.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}

	return file, nil
}
