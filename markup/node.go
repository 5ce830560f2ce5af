// Package markup turns the small markdown dialect used for essay bodies
// into typed display nodes. It knows headings (levels 1-3), unordered and
// ordered list items, paragraphs and bold spans; nothing else.
package markup

import (
	"fmt"
	"strings"
)

type NodeKind uint8

const (
	Paragraph NodeKind = iota
	Heading
	ListItem
)

func (k NodeKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case ListItem:
		return "list_item"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *NodeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "paragraph":
		*k = Paragraph
	case "heading":
		*k = Heading
	case "list_item":
		*k = ListItem
	default:
		return fmt.Errorf("markup: unknown node kind %q", text)
	}
	return nil
}

type SpanKind uint8

const (
	Plain SpanKind = iota
	Bold
)

func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	default:
		return fmt.Sprintf("SpanKind(%d)", uint8(k))
	}
}

func (k SpanKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SpanKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "plain":
		*k = Plain
	case "bold":
		*k = Bold
	default:
		return fmt.Errorf("markup: unknown span kind %q", text)
	}
	return nil
}

// Span is a flat run of inline text. Bold spans never nest.
type Span struct {
	Kind  SpanKind `json:"kind"`
	Value string   `json:"value"`
}

func PlainText(v string) Span { return Span{Kind: Plain, Value: v} }
func BoldText(v string) Span  { return Span{Kind: Bold, Value: v} }

// Node is one block of renderable content. Level is only meaningful for
// headings and Ordered only for list items.
type Node struct {
	Kind    NodeKind `json:"kind"`
	Level   int      `json:"level,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`
	Spans   []Span   `json:"spans"`
}

func NewHeading(level int, spans ...Span) Node {
	return Node{Kind: Heading, Level: level, Spans: spans}
}

func NewParagraph(spans ...Span) Node {
	return Node{Kind: Paragraph, Spans: spans}
}

func NewListItem(ordered bool, spans ...Span) Node {
	return Node{Kind: ListItem, Ordered: ordered, Spans: spans}
}

// Text returns the visible text of the node with emphasis markers removed.
func (n Node) Text() string {
	var sb strings.Builder
	for _, s := range n.Spans {
		sb.WriteString(s.Value)
	}
	return sb.String()
}
