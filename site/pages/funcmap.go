package pages

import (
	"html/template"
	"reflect"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jortwiebrens/portfolio/markup"
	"github.com/jortwiebrens/portfolio/site/content"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"not": func(t bool) bool {
			return !t
		},
		"length": func(slice any) int {
			v := reflect.ValueOf(slice)
			if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
				return v.Len()
			}
			return 0
		},
		"subslice": func(slice any, start, end int) any {
			v := reflect.ValueOf(slice)
			if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
				return nil
			}
			if end > v.Len() {
				end = v.Len()
			}
			if start < 0 || start > end {
				return nil
			}
			return v.Slice(start, end).Interface()
		},
		"timeFmt": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return humanize.Time(t)
		},
		"markdown": renderMarkdown,
		"bold": func(s markup.Span) bool {
			return s.Kind == markup.Bold
		},
		// stars returns five flags, the first rating of them set.
		"stars": func(rating int) []bool {
			out := make([]bool, 5)
			for i := 0; i < rating && i < 5; i++ {
				out[i] = true
			}
			return out
		},
		"eventIcon": func(kind content.EventType) string {
			switch kind {
			case content.Work:
				return "💼"
			case content.Education:
				return "🎓"
			case content.Achievement:
				return "🏆"
			default:
				return "📅"
			}
		},
	}
}
