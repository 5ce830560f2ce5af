package pages

import "github.com/jortwiebrens/portfolio/markup"

// Block is a unit of essay layout. Headings and paragraphs map to a single
// node; runs of list items sharing the same Ordered flag become one list.
type Block struct {
	Kind    markup.NodeKind
	Level   int
	Ordered bool
	Spans   []markup.Span
	Items   [][]markup.Span
}

func (b Block) IsHeading() bool { return b.Kind == markup.Heading }
func (b Block) IsList() bool    { return b.Kind == markup.ListItem }

func Group(nodes []markup.Node) []Block {
	var blocks []Block
	for _, n := range nodes {
		if n.Kind == markup.ListItem {
			if last := len(blocks) - 1; last >= 0 && blocks[last].IsList() && blocks[last].Ordered == n.Ordered {
				blocks[last].Items = append(blocks[last].Items, n.Spans)
				continue
			}
			blocks = append(blocks, Block{Kind: markup.ListItem, Ordered: n.Ordered, Items: [][]markup.Span{n.Spans}})
			continue
		}

		blocks = append(blocks, Block{Kind: n.Kind, Level: n.Level, Spans: n.Spans})
	}
	return blocks
}
