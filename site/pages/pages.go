package pages

import (
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/jortwiebrens/portfolio/markup"
	"github.com/jortwiebrens/portfolio/site/content"
)

//go:embed templates/*.html
var files embed.FS

var (
	cache = make(map[string]*template.Template)
	mutex sync.Mutex
)

func parse(file string) *template.Template {
	mutex.Lock()
	defer mutex.Unlock()

	if tmpl, found := cache[file]; found {
		return tmpl
	}

	tmpl := template.Must(
		template.New("layout.html").
			Funcs(funcMap()).
			ParseFS(files, "templates/layout.html", "templates/"+file),
	)

	cache[file] = tmpl
	return tmpl
}

type HomeParams struct {
	Profile  content.Profile
	Timeline []content.TimelineEvent
}

func Home(w io.Writer, p HomeParams) error {
	return parse("home.html").Execute(w, p)
}

type EssaysParams struct {
	Essays         []*content.Essay
	Categories     []string
	Category       string
	Query          string
	WordsPerMinute int
}

func Essays(w io.Writer, p EssaysParams) error {
	return parse("essays.html").Execute(w, p)
}

type EssayParams struct {
	Essay    *content.Essay
	ReadTime string
	Blocks   []Block
}

// NewEssayParams runs the essay body through the markup renderer and
// groups the result for display.
func NewEssayParams(e *content.Essay, wordsPerMinute int, opts ...markup.Option) EssayParams {
	return EssayParams{
		Essay:    e,
		ReadTime: e.ReadingTime(wordsPerMinute),
		Blocks:   Group(markup.Render(e.Body, opts...)),
	}
}

func Essay(w io.Writer, p EssayParams) error {
	return parse("essay.html").Execute(w, p)
}

// Blocks renders grouped essay blocks as a bare HTML fragment.
func Blocks(w io.Writer, blocks []Block) error {
	return parse("essay.html").ExecuteTemplate(w, "blocks", blocks)
}

type ProjectsParams struct {
	Projects []*content.Project
}

func Projects(w io.Writer, p ProjectsParams) error {
	return parse("projects.html").Execute(w, p)
}

type ProjectParams struct {
	Project *content.Project
}

func Project(w io.Writer, p ProjectParams) error {
	return parse("project.html").Execute(w, p)
}

type ReadingParams struct {
	Items  []*content.ReadingItem
	Active content.ReadingFilter
	Query  string
}

func (ReadingParams) Filters() []struct {
	Key   content.ReadingFilter
	Label string
} {
	return content.ReadingFilters
}

func Reading(w io.Writer, p ReadingParams) error {
	return parse("reading.html").Execute(w, p)
}

// ReadingItems renders only the item list, for htmx swaps.
func ReadingItems(w io.Writer, p ReadingParams) error {
	return parse("reading.html").ExecuteTemplate(w, "reading-items", p)
}

type NotFoundParams struct {
	// What wasn't found, e.g. "Essay".
	What      string
	BackURL   string
	BackLabel string
}

func NotFound(w io.Writer, p NotFoundParams) error {
	return parse("notfound.html").Execute(w, p)
}

func Error(w io.Writer) error {
	return parse("error.html").Execute(w, nil)
}
