package markup

type options struct {
	reflow bool
}

type Option func(*options)

// WithParagraphReflow merges paragraph lines that are separated by a single
// line break into one paragraph, joined by a space. Blank lines still end
// a paragraph.
func WithParagraphReflow() Option {
	return func(o *options) {
		o.reflow = true
	}
}

// Render classifies every line of text and runs the inline pass over the
// extracted content. It is total over all strings and keeps input order.
// Without options each non-blank line yields exactly one node.
func Render(text string, opts ...Option) []Node {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	nodes := []Node{}
	if text == "" {
		return nodes
	}

	// set when the previous input line produced a paragraph
	continued := false

	for _, raw := range splitLines(text) {
		if isBlank(raw) {
			continued = false
			continue
		}

		l := classify(raw)
		inline := spans(l.text)

		if l.kind == Paragraph && o.reflow && continued {
			last := &nodes[len(nodes)-1]
			last.Spans = joinSpans(last.Spans, inline)
			continue
		}

		nodes = append(nodes, Node{
			Kind:    l.kind,
			Level:   l.level,
			Ordered: l.ordered,
			Spans:   inline,
		})
		continued = l.kind == Paragraph
	}

	return nodes
}

// joinSpans appends b to a with a single space between them, merging plain
// runs that end up adjacent.
func joinSpans(a, b []Span) []Span {
	out := make([]Span, 0, len(a)+len(b)+1)
	out = append(out, a...)
	for _, s := range append([]Span{PlainText(" ")}, b...) {
		if n := len(out); n > 0 && s.Kind == Plain && out[n-1].Kind == Plain {
			out[n-1].Value += s.Value
			continue
		}
		out = append(out, s)
	}
	return out
}
