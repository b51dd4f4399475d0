// Package report assembles a completed interview into an ordered sequence of
// document blocks and renders them to a PDF for delivery.
package report

// BlockKind identifies the layout of one document block.
type BlockKind int

const (
	// BlockHeading is a titled section break; Level controls prominence.
	BlockHeading BlockKind = iota
	// BlockParagraph is free-flowing body text.
	BlockParagraph
	// BlockTable is a two-column table with a header row.
	BlockTable
)

// Block is one element of the rendered document.
type Block struct {
	Kind   BlockKind
	Level  int // heading level, 1 (largest) to 3
	Text   string
	Header [2]string
	Cells  [2]string
}

func heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

func paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

func table(header, cells [2]string) Block {
	return Block{Kind: BlockTable, Header: header, Cells: cells}
}
