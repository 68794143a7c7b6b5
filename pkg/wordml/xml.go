package wordml

import (
	"encoding/xml"
	"strconv"
	"strings"
)

const (
	nsW        = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	bulletNum  = "1"
	bulletAbst = "0"
)

type xEmpty struct{}

type xVal struct {
	Val string `xml:"w:val,attr"`
}

func val(s string) *xVal { return &xVal{Val: s} }

func intVal(n int) *xVal { return &xVal{Val: strconv.Itoa(n)} }

type xDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xBody    `xml:"w:body"`
}

type xBody struct {
	Paragraphs []xParagraph `xml:"w:p"`
	SectPr     xSectPr      `xml:"w:sectPr"`
}

type xParagraph struct {
	PPr  *xPPr  `xml:"w:pPr,omitempty"`
	Runs []xRun `xml:"w:r"`
}

// Field order follows the CT_PPr sequence.
type xPPr struct {
	PStyle     *xVal     `xml:"w:pStyle,omitempty"`
	KeepNext   *xEmpty   `xml:"w:keepNext,omitempty"`
	NumPr      *xNumPr   `xml:"w:numPr,omitempty"`
	PBdr       *xPBdr    `xml:"w:pBdr,omitempty"`
	Tabs       *xTabs    `xml:"w:tabs,omitempty"`
	Spacing    *xSpacing `xml:"w:spacing,omitempty"`
	Ind        *xInd     `xml:"w:ind,omitempty"`
	Jc         *xVal     `xml:"w:jc,omitempty"`
	OutlineLvl *xVal     `xml:"w:outlineLvl,omitempty"`
}

type xNumPr struct {
	Ilvl  xVal `xml:"w:ilvl"`
	NumID xVal `xml:"w:numId"`
}

type xPBdr struct {
	Bottom xBorder `xml:"w:bottom"`
}

type xBorder struct {
	Val   string `xml:"w:val,attr"`
	Sz    int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type xTabs struct {
	Tabs []xTabStop `xml:"w:tab"`
}

type xTabStop struct {
	Val string `xml:"w:val,attr"`
	Pos int    `xml:"w:pos,attr"`
}

type xSpacing struct {
	Before int `xml:"w:before,attr"`
	After  int `xml:"w:after,attr"`
}

type xInd struct {
	Left    int `xml:"w:left,attr"`
	Hanging int `xml:"w:hanging,attr"`
}

type xRun struct {
	RPr     *xRPr `xml:"w:rPr,omitempty"`
	Content []any
}

// Field order follows the CT_RPr sequence.
type xRPr struct {
	RFonts *xRFonts `xml:"w:rFonts,omitempty"`
	B      *xEmpty  `xml:"w:b,omitempty"`
	I      *xEmpty  `xml:"w:i,omitempty"`
	Color  *xVal    `xml:"w:color,omitempty"`
	Sz     *xVal    `xml:"w:sz,omitempty"`
	SzCs   *xVal    `xml:"w:szCs,omitempty"`
}

type xRFonts struct {
	ASCII    string `xml:"w:ascii,attr"`
	HAnsi    string `xml:"w:hAnsi,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
	CS       string `xml:"w:cs,attr"`
}

type xText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr"`
	Text    string   `xml:",chardata"`
}

type xRunTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type xBreak struct {
	XMLName xml.Name `xml:"w:br"`
}

type xSectPr struct {
	PgSz  xPgSz  `xml:"w:pgSz"`
	PgMar xPgMar `xml:"w:pgMar"`
}

type xPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type xStyles struct {
	XMLName     xml.Name     `xml:"w:styles"`
	W           string       `xml:"xmlns:w,attr"`
	DocDefaults xDocDefaults `xml:"w:docDefaults"`
	Styles      []xStyle     `xml:"w:style"`
}

type xDocDefaults struct {
	RPrDefault struct {
		RPr xRPr `xml:"w:rPr"`
	} `xml:"w:rPrDefault"`
	PPrDefault struct {
		PPr xPPr `xml:"w:pPr"`
	} `xml:"w:pPrDefault"`
}

type xStyle struct {
	Type    string  `xml:"w:type,attr"`
	Default string  `xml:"w:default,attr,omitempty"`
	StyleID string  `xml:"w:styleId,attr"`
	Name    xVal    `xml:"w:name"`
	BasedOn *xVal   `xml:"w:basedOn,omitempty"`
	Next    *xVal   `xml:"w:next,omitempty"`
	QFormat *xEmpty `xml:"w:qFormat,omitempty"`
	PPr     *xPPr   `xml:"w:pPr,omitempty"`
	RPr     *xRPr   `xml:"w:rPr,omitempty"`
}

type xNumbering struct {
	XMLName     xml.Name       `xml:"w:numbering"`
	W           string         `xml:"xmlns:w,attr"`
	AbstractNum []xAbstractNum `xml:"w:abstractNum"`
	Num         []xNum         `xml:"w:num"`
}

type xAbstractNum struct {
	ID             string `xml:"w:abstractNumId,attr"`
	MultiLevelType xVal   `xml:"w:multiLevelType"`
	Lvl            xLvl   `xml:"w:lvl"`
}

type xLvl struct {
	Ilvl    string `xml:"w:ilvl,attr"`
	Start   xVal   `xml:"w:start"`
	NumFmt  xVal   `xml:"w:numFmt"`
	LvlText xVal   `xml:"w:lvlText"`
	LvlJc   xVal   `xml:"w:lvlJc"`
	PPr     xPPr   `xml:"w:pPr"`
}

type xNum struct {
	NumID         string `xml:"w:numId,attr"`
	AbstractNumID xVal   `xml:"w:abstractNumId"`
}

type xTypes struct {
	XMLName   xml.Name    `xml:"Types"`
	Xmlns     string      `xml:"xmlns,attr"`
	Defaults  []xDefault  `xml:"Default"`
	Overrides []xOverride `xml:"Override"`
}

type xDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xRelationships struct {
	XMLName       xml.Name        `xml:"Relationships"`
	Xmlns         string          `xml:"xmlns,attr"`
	Relationships []xRelationship `xml:"Relationship"`
}

type xRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

type xCore struct {
	XMLName     xml.Name `xml:"cp:coreProperties"`
	CP          string   `xml:"xmlns:cp,attr"`
	DC          string   `xml:"xmlns:dc,attr"`
	DCTerms     string   `xml:"xmlns:dcterms,attr"`
	Title       string   `xml:"dc:title,omitempty"`
	Creator     string   `xml:"dc:creator,omitempty"`
	Description string   `xml:"dc:description,omitempty"`
}

func (p Paragraph) toXML() xParagraph {
	var ppr xPPr
	used := false
	if p.Style != "" {
		ppr.PStyle = val(p.Style)
		used = true
	}
	if p.Bullet {
		ppr.NumPr = &xNumPr{Ilvl: xVal{Val: "0"}, NumID: xVal{Val: bulletNum}}
		used = true
	}
	if b := p.BottomBorder; b != nil {
		ppr.PBdr = &xPBdr{Bottom: xBorder{Val: "single", Sz: b.Size, Space: b.Space, Color: b.Color}}
		used = true
	}
	if len(p.Tabs) > 0 {
		tabs := make([]xTabStop, len(p.Tabs))
		for i, t := range p.Tabs {
			tabs[i] = xTabStop{Val: string(t.Kind), Pos: t.Pos}
		}
		ppr.Tabs = &xTabs{Tabs: tabs}
		used = true
	}
	if s := p.Spacing; s != nil {
		ppr.Spacing = &xSpacing{Before: s.Before, After: s.After}
		used = true
	}
	if p.Align != "" {
		ppr.Jc = val(string(p.Align))
		used = true
	}

	out := xParagraph{Runs: make([]xRun, 0, len(p.Runs))}
	if used {
		out.PPr = &ppr
	}
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, r.toXML())
	}
	return out
}

func (r Run) toXML() xRun {
	var rpr xRPr
	used := false
	if r.Bold {
		rpr.B = &xEmpty{}
		used = true
	}
	if r.Italic {
		rpr.I = &xEmpty{}
		used = true
	}
	if r.Color != "" {
		rpr.Color = val(r.Color)
		used = true
	}
	if r.Size > 0 {
		rpr.Sz = intVal(r.Size)
		rpr.SzCs = intVal(r.Size)
		used = true
	}

	out := xRun{Content: runContent(r.Text)}
	if used {
		out.RPr = &rpr
	}
	return out
}

// runContent splits text on tabs and newlines into w:t, w:tab and w:br.
func runContent(text string) []any {
	var content []any
	var seg strings.Builder
	flush := func() {
		if seg.Len() > 0 {
			content = append(content, xText{Space: "preserve", Text: seg.String()})
			seg.Reset()
		}
	}
	for _, c := range text {
		switch c {
		case '\t':
			flush()
			content = append(content, xRunTab{})
		case '\n':
			flush()
			content = append(content, xBreak{})
		default:
			seg.WriteRune(c)
		}
	}
	flush()
	return content
}
