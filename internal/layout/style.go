// Package layout holds what both document backends share: the visual style,
// the canonical section order and the competencies layout policy.
package layout

// Inches is a length in inches.
type Inches float64

// Twips converts to the 1/1440 inch unit used by WordprocessingML.
func (in Inches) Twips() int {
	return int(float64(in)*1440 + 0.5)
}

// Margins are page margins.
type Margins struct {
	Top, Right, Bottom, Left Inches
}

// Style is the single visual identity consumed by the DOCX writer, the print
// CSS and the PDF print parameters. Colors are hex RGB without '#'.
type Style struct {
	FontFamily string
	// CSSFontStack is used by the print HTML; FontFamily leads it.
	CSSFontStack string

	NamePt    float64
	LabelPt   float64
	SectionPt float64
	BodyPt    float64
	SmallPt   float64

	PrimaryColor string
	AccentColor  string
	LinkColor    string
	MutedColor   string
	TextColor    string

	PageWidth  Inches
	PageHeight Inches
	Margin     Margins

	CompetencyColumns int
	Separator         string
	BulletGlyph       string
}

// DefaultStyle is US Letter with half inch margins, Calibri 11pt body text.
func DefaultStyle() Style {
	return Style{
		FontFamily:   "Calibri",
		CSSFontStack: "Calibri, 'Segoe UI', -apple-system, Arial, sans-serif",

		NamePt:    28,
		LabelPt:   12,
		SectionPt: 12,
		BodyPt:    11,
		SmallPt:   10,

		PrimaryColor: "0F172A",
		AccentColor:  "996B1D",
		LinkColor:    "6B8BAD",
		MutedColor:   "444444",
		TextColor:    "1A1A1A",

		PageWidth:  8.5,
		PageHeight: 11,
		Margin:     Margins{Top: 0.5, Right: 0.5, Bottom: 0.5, Left: 0.5},

		CompetencyColumns: 3,
		Separator:         "  |  ",
		BulletGlyph:       "•",
	}
}

// TextWidth is the printable width between the left and right margins.
func (s Style) TextWidth() Inches {
	return s.PageWidth - s.Margin.Left - s.Margin.Right
}

// HalfPoints converts a point size to the half-point unit used by WordprocessingML.
func HalfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}
