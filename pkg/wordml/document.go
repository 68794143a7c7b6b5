// Package wordml writes and reads a small subset of WordprocessingML (.docx):
// paragraphs with styled runs, tab stops, bottom borders, a single bullet
// numbering definition, a document-wide default run style and page margins.
//
// Lengths are twips (1/1440 inch), font sizes are half-points, border sizes
// are eighths of a point, colors are hex RGB without '#'.
package wordml

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
	AlignBoth   Alignment = "both"
)

type TabKind string

const (
	TabLeft   TabKind = "left"
	TabCenter TabKind = "center"
	TabRight  TabKind = "right"
)

type TabStop struct {
	Kind TabKind
	Pos  int
}

type Border struct {
	Color string
	Size  int
	Space int
}

type Spacing struct {
	Before int
	After  int
}

// Run is a styled span of text. A '\t' in Text becomes a tab, a '\n' a line
// break. Zero Size and empty Color inherit the document defaults.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
	Color  string
}

type Paragraph struct {
	// Style is a paragraph style id such as "Heading1".
	Style        string
	Align        Alignment
	Spacing      *Spacing
	BottomBorder *Border
	Tabs         []TabStop
	// Bullet attaches the paragraph to the document's bullet list.
	Bullet bool
	Runs   []Run
}

// HeadingStyle declares a paragraph style that headings can reference.
type HeadingStyle struct {
	ID    string
	Name  string
	Level int
	Size  int
	Color string
}

// BulletList is the one numbering definition shared by every bullet paragraph.
type BulletList struct {
	Glyph   string
	Indent  int
	Hanging int
}

type Margins struct {
	Top, Right, Bottom, Left int
}

type PageSetup struct {
	Width  int
	Height int
	Margin Margins
}

// Document is an in-memory .docx. Build it up with Add, then call Bytes.
type Document struct {
	Title       string
	Creator     string
	Description string

	// Font and FontSize form the default run style applied document wide.
	Font     string
	FontSize int

	Headings []HeadingStyle
	Bullets  BulletList
	Page     PageSetup

	Body []Paragraph
}

func (d *Document) Add(p ...Paragraph) {
	d.Body = append(d.Body, p...)
}
