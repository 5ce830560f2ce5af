package state

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jortwiebrens/portfolio/log"
	"github.com/jortwiebrens/portfolio/site/pages"
)

// render buffers the page; a template error becomes a 500.
func (s *State) render(w http.ResponseWriter, r *http.Request, page func(io.Writer) error) {
	var buf bytes.Buffer
	if err := page(&buf); err != nil {
		log.FromContext(r.Context()).Error("rendering page", "err", err)
		s.Write500(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (s *State) Write404(w http.ResponseWriter, r *http.Request, p pages.NotFoundParams) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := pages.NotFound(w, p); err != nil {
		log.FromContext(r.Context()).Error("404 template", "err", err)
	}
}

func (s *State) Write500(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if err := pages.Error(w); err != nil {
		log.FromContext(r.Context()).Error("500 template", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func notFound(w http.ResponseWriter) {
	writeError(w, "not found", http.StatusNotFound)
}
