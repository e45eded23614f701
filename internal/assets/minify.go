// Package assets minifies HTML, CSS and JavaScript responses on the fly.
package assets

import (
	"net/http"
	"regexp"

	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minhtml "github.com/tdewolff/minify/v2/html"
	minjs "github.com/tdewolff/minify/v2/js"
)

var jsMediatype = regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`)

// NewMinifier returns a minifier with the css, js and html minifiers registered
func NewMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("text/html", minhtml.Minify)
	m.AddFuncRegexp(jsMediatype, minjs.Minify)
	return m
}

// Middleware minifies responses whose content type has a registered
// minifier. Anything else is written through unchanged. Range requests are
// served in full: a byte range of the source file does not describe the
// minified output.
func Middleware(m *minify.M) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		minified := m.Middleware(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Range") != "" {
				r = r.Clone(r.Context())
				r.Header.Del("Range")
				r.Header.Del("If-Range")
			}
			minified.ServeHTTP(w, r)
		})
	}
}
