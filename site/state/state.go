package state

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jortwiebrens/portfolio/markup"
	"github.com/jortwiebrens/portfolio/site"
	"github.com/jortwiebrens/portfolio/site/content"
)

type State struct {
	config *site.Config
	store  *content.Store
	logger *slog.Logger
}

func Make(config *site.Config, store *content.Store, logger *slog.Logger) *State {
	return &State{
		config: config,
		store:  store,
		logger: logger,
	}
}

// renderOptions are the markup options essay bodies are rendered with.
func (s *State) renderOptions() []markup.Option {
	if s.config.ParagraphReflow {
		return []markup.Option{markup.WithParagraphReflow()}
	}
	return nil
}

func (s *State) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.Home)

	r.Route("/essays", func(r chi.Router) {
		r.Get("/", s.Essays)
		r.Get("/{slug}", s.Essay)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", s.Projects)
		r.Get("/{id}", s.Project)
	})

	r.Get("/reading", s.Reading)

	r.Route("/api", func(r chi.Router) {
		r.Get("/essays/{slug}/nodes", s.EssayNodes)
	})

	r.Get("/healthz", s.Health)

	if s.config.Dev {
		r.Mount("/debug", middleware.Profiler())
	}

	r.NotFound(s.NotFound)

	return r
}
