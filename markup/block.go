package markup

import "strings"

// line is the result of block classification: the node shape plus the raw
// text that still has to go through the inline pass.
type line struct {
	kind    NodeKind
	level   int
	ordered bool
	text    string
}

var headingMarkers = [...]string{"# ", "## ", "### "}

// classify decides the block type of a single non-blank line. The first
// matching rule wins; a marker with nothing after it is not a match.
func classify(s string) line {
	for i, marker := range headingMarkers {
		if rest, ok := strings.CutPrefix(s, marker); ok && rest != "" {
			return line{kind: Heading, level: i + 1, text: rest}
		}
	}

	if rest, ok := strings.CutPrefix(s, "- "); ok && rest != "" {
		return line{kind: ListItem, text: rest}
	}

	if rest, ok := cutOrderedMarker(s); ok {
		return line{kind: ListItem, ordered: true, text: rest}
	}

	return line{kind: Paragraph, text: s}
}

// cutOrderedMarker strips a leading "<digits>. " marker. The number itself
// is dropped.
func cutOrderedMarker(s string) (string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", false
	}

	rest, ok := strings.CutPrefix(s[i:], ". ")
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// splitLines splits on \n and drops the \r of CRLF line endings.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
