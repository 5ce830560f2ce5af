package markup

import "strings"

const boldMarker = "**"

// spans splits text into plain and bold runs. An opening ** only becomes
// bold when a closing ** follows on the same line with something between
// them; otherwise the markers stay in the plain text.
func spans(text string) []Span {
	var (
		out   []Span
		plain strings.Builder
	)

	flush := func() {
		if plain.Len() > 0 {
			out = append(out, PlainText(plain.String()))
			plain.Reset()
		}
	}

	for text != "" {
		open := strings.Index(text, boldMarker)
		if open < 0 {
			plain.WriteString(text)
			break
		}

		plain.WriteString(text[:open])
		rest := text[open+len(boldMarker):]

		end := strings.Index(rest, boldMarker)
		if end <= 0 {
			// unpaired, or an empty pair like ****
			plain.WriteString(boldMarker)
			text = rest
			continue
		}

		flush()
		out = append(out, BoldText(rest[:end]))
		text = rest[end+len(boldMarker):]
	}

	flush()
	return out
}
