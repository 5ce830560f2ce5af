package markup

import (
	"strings"
	"testing"
)

// FuzzRender checks that Render accepts any input and keeps the one node
// per non-blank line shape.
func FuzzRender(f *testing.F) {
	seeds := []string{
		"",
		"# Heading",
		"## A\n### B",
		"- one\n- two",
		"1. first\n2. second",
		"Hello **world** today",
		"Hello **world",
		"****",
		"***bold***",
		"\x00\x01**\x02",
		"line1\r\nline2",
		"#\n##\n###\n-\n1.",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, in string) {
		nodes := Render(in)

		nonBlank := 0
		for _, l := range splitLines(in) {
			if !isBlank(l) {
				nonBlank++
			}
		}
		if len(nodes) != nonBlank {
			t.Fatalf("got %d nodes for %d non-blank lines", len(nodes), nonBlank)
		}

		for _, n := range nodes {
			if n.Kind == Heading && (n.Level < 1 || n.Level > 3) {
				t.Fatalf("heading level %d out of range", n.Level)
			}
			for _, s := range n.Spans {
				if s.Kind == Bold && (s.Value == "" || strings.Contains(s.Value, "**")) {
					t.Fatalf("bad bold span %q", s.Value)
				}
			}
		}

		reflowed := Render(in, WithParagraphReflow())
		if len(reflowed) > len(nodes) {
			t.Fatalf("reflow produced more nodes (%d) than line mode (%d)", len(reflowed), len(nodes))
		}
	})
}
