package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDefault(t *testing.T) *Store {
	t.Helper()
	s, err := Default()
	require.NoError(t, err)
	return s
}

func TestDefault(t *testing.T) {
	s := mustDefault(t)

	assert.Equal(t, "Jort Wiebrens", s.Profile().Name())
	assert.Len(t, s.Essays(), 3)
	assert.Len(t, s.Projects(), 3)
	assert.Len(t, s.Reading(FilterAll), 6)
	assert.Len(t, s.Timeline(), 6)
}

func TestEssaysNewestFirst(t *testing.T) {
	s := mustDefault(t)

	var slugs []string
	for _, e := range s.Essays() {
		slugs = append(slugs, e.Slug)
	}
	assert.Equal(t, []string{"technology-innovation", "leadership-strategy", "product-development"}, slugs)
	assert.Equal(t, 2024, s.Essays()[0].Published().Year())
}

func TestLookupNotFound(t *testing.T) {
	s := mustDefault(t)

	e, err := s.Essay("leadership-strategy")
	require.NoError(t, err)
	assert.Equal(t, "Leading Through Uncertainty", e.Title)
	assert.True(t, strings.HasPrefix(e.Body, "# Leading Through Uncertainty\n"))

	_, err = s.Essay("does-not-exist")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Project("nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.ReadingItem("nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	p, err := s.Project("ai-analytics")
	require.NoError(t, err)
	assert.True(t, p.Links.Any())
	assert.Equal(t, "https://ai-analytics-case.example.com", p.Links.CaseStudy)
}

func TestEssayCategories(t *testing.T) {
	s := mustDefault(t)

	assert.Equal(t, []string{"Technology & Innovation", "Leadership & Strategy", "Product Development"}, s.EssayCategories())
	assert.Len(t, s.EssaysInCategory("Product Development"), 1)
	assert.Len(t, s.EssaysInCategory(""), 3)
	assert.Empty(t, s.EssaysInCategory("Cooking"))
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		essay Essay
		want  string
	}{
		{"literal wins", Essay{ReadTime: "5 min read", Body: "a b c"}, "5 min read"},
		{"short body rounds up to one", Essay{Body: "just a few words"}, "1 min read"},
		{"empty body", Essay{}, "1 min read"},
		{"long body", Essay{Body: strings.Repeat("word ", 401)}, "3 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.essay.ReadingTime(200); got != tt.want {
				t.Errorf("ReadingTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadingItemLabels(t *testing.T) {
	s := mustDefault(t)

	book, err := s.ReadingItem("good-strategy-bad-strategy")
	require.NoError(t, err)
	assert.Equal(t, "Read March 2024", book.DateLine())
	assert.Equal(t, "View on Goodreads", book.LinkLabel())

	article, err := s.ReadingItem("stripe-payment-orchestration")
	require.NoError(t, err)
	assert.Equal(t, "Read Article", article.LinkLabel())

	current, err := s.ReadingItem("high-output-management")
	require.NoError(t, err)
	assert.Equal(t, "", current.DateLine())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "duplicate essay slug",
			doc: `essays:
- {slug: a, date: "July 1, 2024"}
- {slug: a, date: "July 2, 2024"}`,
			want: "duplicate slug",
		},
		{
			name: "bad essay date",
			doc:  `essays: [{slug: a, date: "2024-07-01"}]`,
			want: "bad date",
		},
		{
			name: "missing project id",
			doc:  `projects: [{title: x}]`,
			want: "missing id",
		},
		{
			name: "unknown reading status",
			doc:  `reading: [{id: x, type: book, status: shelved}]`,
			want: "unknown status",
		},
		{
			name: "rating out of range",
			doc:  `reading: [{id: x, type: book, status: completed, rating: 7}]`,
			want: "out of range",
		},
		{
			name: "unknown timeline type",
			doc:  `timeline: [{id: x, type: hobby}]`,
			want: "unknown type",
		},
		{
			name: "unknown field",
			doc:  `essays: [{slug: a, date: "July 1, 2024", author: me}]`,
			want: "decoding content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Essays())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `essays:
- slug: hello
  title: Hello
  date: January 2, 2025
  body: |
    # Hello
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	e, err := s.Essay("hello")
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n", e.Body)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
