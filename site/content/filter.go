package content

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

type ReadingFilter string

const (
	FilterAll         ReadingFilter = "all"
	FilterCurrent     ReadingFilter = "current"
	FilterRecommended ReadingFilter = "recommended"
	FilterArticles    ReadingFilter = "articles"
)

// ReadingFilters are the filters offered on the reading page, in order.
var ReadingFilters = []struct {
	Key   ReadingFilter
	Label string
}{
	{FilterAll, "All"},
	{FilterCurrent, "Currently Reading"},
	{FilterRecommended, "Recommended"},
	{FilterArticles, "Articles"},
}

// ParseReadingFilter maps a query value to a filter. Unknown keys mean all.
func ParseReadingFilter(key string) ReadingFilter {
	switch f := ReadingFilter(strings.ToLower(strings.TrimSpace(key))); f {
	case FilterCurrent, FilterRecommended, FilterArticles:
		return f
	default:
		return FilterAll
	}
}

func (f ReadingFilter) match(r *ReadingItem) bool {
	switch f {
	case FilterCurrent:
		return r.Status == StatusReading
	case FilterRecommended:
		return r.Status == StatusRecommended
	case FilterArticles:
		return r.Type == Article
	default:
		return true
	}
}

// Reading returns the items matching f in content order.
func (s *Store) Reading(f ReadingFilter) []*ReadingItem {
	var out []*ReadingItem
	for _, r := range s.reading {
		if f.match(r) {
			out = append(out, r)
		}
	}
	return out
}

type essaySource []*Essay

func (e essaySource) String(i int) string {
	return strings.Join([]string{e[i].Title, e[i].Category, e[i].Excerpt}, " ")
}

func (e essaySource) Len() int { return len(e) }

type readingSource []*ReadingItem

func (r readingSource) String(i int) string {
	return strings.Join([]string{r[i].Title, r[i].Author, r[i].Category, r[i].Description}, " ")
}

func (r readingSource) Len() int { return len(r) }

// SearchEssays fuzzy matches q against titles, categories and excerpts.
// Results are ordered best match first; an empty query returns every essay.
func (s *Store) SearchEssays(q string) []*Essay {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.essays
	}

	matches := fuzzy.FindFrom(q, essaySource(s.essays))
	out := make([]*Essay, 0, len(matches))
	for _, m := range matches {
		out = append(out, s.essays[m.Index])
	}
	return out
}

// SearchReading is SearchEssays for the reading list, applied after f.
func (s *Store) SearchReading(f ReadingFilter, q string) []*ReadingItem {
	items := s.Reading(f)
	q = strings.TrimSpace(q)
	if q == "" {
		return items
	}

	matches := fuzzy.FindFrom(q, readingSource(items))
	out := make([]*ReadingItem, 0, len(matches))
	for _, m := range matches {
		out = append(out, items[m.Index])
	}
	return out
}
