// Package content holds the static records shown on the site: profile,
// essays, projects, reading list and career timeline. A Store is loaded
// once from YAML and never changes afterwards, so it is safe to share
// between goroutines.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by lookups for identifiers with no entry.
var ErrNotFound = errors.New("content: not found")

//go:embed content.yaml
var embedded []byte

type document struct {
	Profile  Profile         `yaml:"profile"`
	Essays   []Essay         `yaml:"essays"`
	Projects []Project       `yaml:"projects"`
	Reading  []ReadingItem   `yaml:"reading"`
	Timeline []TimelineEvent `yaml:"timeline"`
}

type Store struct {
	profile  Profile
	essays   []*Essay
	projects []*Project
	reading  []*ReadingItem
	timeline []TimelineEvent

	essayBySlug map[string]*Essay
	projectByID map[string]*Project
	readingByID map[string]*ReadingItem
}

// Default returns the store built from the content compiled into the binary.
func Default() (*Store, error) {
	s, err := Load(bytes.NewReader(embedded))
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return s, nil
}

func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content file: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Load(r io.Reader) (*Store, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding content: %w", err)
	}

	s := &Store{
		profile:     doc.Profile,
		timeline:    doc.Timeline,
		essayBySlug: make(map[string]*Essay, len(doc.Essays)),
		projectByID: make(map[string]*Project, len(doc.Projects)),
		readingByID: make(map[string]*ReadingItem, len(doc.Reading)),
	}

	for i := range doc.Essays {
		e := &doc.Essays[i]
		if e.Slug == "" {
			return nil, fmt.Errorf("essay %d: missing slug", i)
		}
		if _, dup := s.essayBySlug[e.Slug]; dup {
			return nil, fmt.Errorf("essay %q: duplicate slug", e.Slug)
		}
		published, err := time.Parse(DateLayout, e.Date)
		if err != nil {
			return nil, fmt.Errorf("essay %q: bad date: %w", e.Slug, err)
		}
		e.published = published

		s.essayBySlug[e.Slug] = e
		s.essays = append(s.essays, e)
	}
	sort.SliceStable(s.essays, func(i, j int) bool {
		return s.essays[i].published.After(s.essays[j].published)
	})

	for i := range doc.Projects {
		p := &doc.Projects[i]
		if p.ID == "" {
			return nil, fmt.Errorf("project %d: missing id", i)
		}
		if _, dup := s.projectByID[p.ID]; dup {
			return nil, fmt.Errorf("project %q: duplicate id", p.ID)
		}
		s.projectByID[p.ID] = p
		s.projects = append(s.projects, p)
	}

	for i := range doc.Reading {
		r := &doc.Reading[i]
		if r.ID == "" {
			return nil, fmt.Errorf("reading item %d: missing id", i)
		}
		if _, dup := s.readingByID[r.ID]; dup {
			return nil, fmt.Errorf("reading item %q: duplicate id", r.ID)
		}
		if !r.Type.valid() {
			return nil, fmt.Errorf("reading item %q: unknown type %q", r.ID, r.Type)
		}
		if !r.Status.valid() {
			return nil, fmt.Errorf("reading item %q: unknown status %q", r.ID, r.Status)
		}
		if r.Rating < 0 || r.Rating > 5 {
			return nil, fmt.Errorf("reading item %q: rating %d out of range", r.ID, r.Rating)
		}
		s.readingByID[r.ID] = r
		s.reading = append(s.reading, r)
	}

	seen := make(map[string]bool, len(doc.Timeline))
	for i, ev := range doc.Timeline {
		if ev.ID == "" {
			return nil, fmt.Errorf("timeline event %d: missing id", i)
		}
		if seen[ev.ID] {
			return nil, fmt.Errorf("timeline event %q: duplicate id", ev.ID)
		}
		if !ev.Type.valid() {
			return nil, fmt.Errorf("timeline event %q: unknown type %q", ev.ID, ev.Type)
		}
		seen[ev.ID] = true
	}

	return s, nil
}

func (s *Store) Profile() Profile {
	return s.profile
}

// Essays are ordered newest first.
func (s *Store) Essays() []*Essay {
	return s.essays
}

func (s *Store) Essay(slug string) (*Essay, error) {
	e, ok := s.essayBySlug[slug]
	if !ok {
		return nil, fmt.Errorf("essay %q: %w", slug, ErrNotFound)
	}
	return e, nil
}

// EssayCategories lists the distinct essay categories in listing order.
func (s *Store) EssayCategories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, e := range s.essays {
		if !seen[e.Category] {
			seen[e.Category] = true
			cats = append(cats, e.Category)
		}
	}
	return cats
}

func (s *Store) EssaysInCategory(category string) []*Essay {
	if category == "" {
		return s.essays
	}

	var out []*Essay
	for _, e := range s.essays {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) Projects() []*Project {
	return s.projects
}

func (s *Store) Project(id string) (*Project, error) {
	p, ok := s.projectByID[id]
	if !ok {
		return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return p, nil
}

func (s *Store) ReadingItem(id string) (*ReadingItem, error) {
	r, ok := s.readingByID[id]
	if !ok {
		return nil, fmt.Errorf("reading item %q: %w", id, ErrNotFound)
	}
	return r, nil
}

func (s *Store) Timeline() []TimelineEvent {
	return s.timeline
}
