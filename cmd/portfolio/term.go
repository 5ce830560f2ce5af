package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jortwiebrens/portfolio/markup"
	"github.com/jortwiebrens/portfolio/site/pages"
	"github.com/mattn/go-isatty"
)

const (
	formatJSON = "json"
	formatHTML = "html"
	formatTerm = "term"
)

type styles struct {
	Title    lipgloss.Style
	Heading1 lipgloss.Style
	Heading2 lipgloss.Style
	Heading3 lipgloss.Style
	Bold     lipgloss.Style
	Marker   lipgloss.Style
	Dim      lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}

	accent := lipgloss.Color("208")
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Heading1: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(accent),
		Heading2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Heading3: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Bold:     lipgloss.NewStyle().Bold(true),
		Marker:   lipgloss.NewStyle().Foreground(accent),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s styles) heading(level int) lipgloss.Style {
	switch level {
	case 1:
		return s.Heading1
	case 2:
		return s.Heading2
	default:
		return s.Heading3
	}
}

func (s styles) spans(spans []markup.Span) string {
	var sb strings.Builder
	for _, sp := range spans {
		if sp.Kind == markup.Bold {
			sb.WriteString(s.Bold.Render(sp.Value))
			continue
		}
		sb.WriteString(sp.Value)
	}
	return sb.String()
}

// isTerminal reports whether w is a terminal that should get colour.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

func writeNodes(w io.Writer, format string, nodes []markup.Node, st styles) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case formatHTML:
		return pages.Blocks(w, pages.Group(nodes))
	case formatTerm:
		return writeTerm(w, nodes, st)
	default:
		return fmt.Errorf("unknown format %q, want one of json, html, term", format)
	}
}

// writeTerm prints nodes as styled text, one blank line between blocks.
// Ordered lists are numbered by position, whatever the source numbers were.
func writeTerm(w io.Writer, nodes []markup.Node, st styles) error {
	for i, b := range pages.Group(nodes) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		var err error
		switch {
		case b.IsHeading():
			var text strings.Builder
			for _, sp := range b.Spans {
				text.WriteString(sp.Value)
			}
			_, err = fmt.Fprintln(w, st.heading(b.Level).Render(text.String()))
		case b.IsList():
			for n, item := range b.Items {
				marker := "•"
				if b.Ordered {
					marker = fmt.Sprintf("%d.", n+1)
				}
				if _, err = fmt.Fprintf(w, "%s %s\n", st.Marker.Render(marker), st.spans(item)); err != nil {
					break
				}
			}
		default:
			_, err = fmt.Fprintln(w, st.spans(b.Spans))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
