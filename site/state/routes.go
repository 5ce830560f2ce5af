package state

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/jortwiebrens/portfolio/log"
	"github.com/jortwiebrens/portfolio/markup"
	"github.com/jortwiebrens/portfolio/site"
	"github.com/jortwiebrens/portfolio/site/content"
	"github.com/jortwiebrens/portfolio/site/pages"
)

func (s *State) Home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, func(w io.Writer) error {
		return pages.Home(w, pages.HomeParams{
			Profile:  s.store.Profile(),
			Timeline: s.store.Timeline(),
		})
	})
}

func (s *State) Essays(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get(site.SearchParam)
	category := r.URL.Query().Get(site.CategoryParam)

	var essays []*content.Essay
	for _, e := range s.store.SearchEssays(query) {
		if category == "" || e.Category == category {
			essays = append(essays, e)
		}
	}

	s.render(w, r, func(w io.Writer) error {
		return pages.Essays(w, pages.EssaysParams{
			Essays:         essays,
			Categories:     s.store.EssayCategories(),
			Category:       category,
			Query:          query,
			WordsPerMinute: site.WordsPerMinute,
		})
	})
}

func (s *State) Essay(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	e, err := s.store.Essay(slug)
	if err != nil {
		if !errors.Is(err, content.ErrNotFound) {
			log.FromContext(r.Context()).Error("loading essay", "slug", slug, "err", err)
		}
		s.Write404(w, r, pages.NotFoundParams{
			What:      "Essay",
			BackURL:   "/essays",
			BackLabel: "Back to Essays",
		})
		return
	}

	s.render(w, r, func(w io.Writer) error {
		return pages.Essay(w, pages.NewEssayParams(e, site.WordsPerMinute, s.renderOptions()...))
	})
}

func (s *State) Projects(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, func(w io.Writer) error {
		return pages.Projects(w, pages.ProjectsParams{Projects: s.store.Projects()})
	})
}

func (s *State) Project(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.store.Project(id)
	if err != nil {
		s.Write404(w, r, pages.NotFoundParams{
			What:      "Project",
			BackURL:   "/projects",
			BackLabel: "Back to Projects",
		})
		return
	}

	s.render(w, r, func(w io.Writer) error {
		return pages.Project(w, pages.ProjectParams{Project: p})
	})
}

func (s *State) Reading(w http.ResponseWriter, r *http.Request) {
	filter := content.ParseReadingFilter(r.URL.Query().Get(site.ReadingFilterParam))
	query := r.URL.Query().Get(site.SearchParam)

	params := pages.ReadingParams{
		Items:  s.store.SearchReading(filter, query),
		Active: filter,
		Query:  query,
	}

	if !pages.IsHtmx(r) {
		s.render(w, r, func(w io.Writer) error {
			return pages.Reading(w, params)
		})
		return
	}

	v := url.Values{}
	v.Set(site.ReadingFilterParam, string(filter))
	if query != "" {
		v.Set(site.SearchParam, query)
	}
	pages.HxPushURL(w, "/reading?"+v.Encode())

	s.render(w, r, func(w io.Writer) error {
		return pages.ReadingItems(w, params)
	})
}

// EssayNodes serves the rendered display nodes of an essay body.
func (s *State) EssayNodes(w http.ResponseWriter, r *http.Request) {
	e, err := s.store.Essay(chi.URLParam(r, "slug"))
	if err != nil {
		notFound(w)
		return
	}

	writeJSON(w, markup.Render(e.Body, s.renderOptions()...))
}

func (s *State) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *State) NotFound(w http.ResponseWriter, r *http.Request) {
	s.Write404(w, r, pages.NotFoundParams{
		What:      "Page",
		BackURL:   "/",
		BackLabel: "Back to Home",
	})
}
