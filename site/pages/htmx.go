package pages

import "net/http"

// IsHtmx reports whether r was issued by htmx, in which case handlers
// answer with a fragment instead of a full page.
func IsHtmx(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// HxPushURL makes htmx push location into the browser history once the
// swap is done, so filtered views keep a shareable URL.
func HxPushURL(w http.ResponseWriter, location string) {
	w.Header().Set("HX-Push-Url", location)
}
