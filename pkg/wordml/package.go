package wordml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

const (
	partDocument  = "word/document.xml"
	partStyles    = "word/styles.xml"
	partNumbering = "word/numbering.xml"
	partDocRels   = "word/_rels/document.xml.rels"
	partCore      = "docProps/core.xml"
	partRels      = "_rels/.rels"
	partTypes     = "[Content_Types].xml"

	relBase = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	ctBase  = "application/vnd.openxmlformats-officedocument.wordprocessingml."
)

// Bytes encodes the complete .docx package. Nothing is returned unless every
// part encoded cleanly.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo streams the package to w. Prefer Bytes when w is a file that must
// not be left half written.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := []struct {
		name string
		v    any
	}{
		{partTypes, contentTypes()},
		{partRels, packageRels()},
		{partCore, d.core()},
		{partDocument, d.document()},
		{partStyles, d.styles()},
		{partNumbering, d.numbering()},
		{partDocRels, documentRels()},
	}
	for _, p := range parts {
		if err := writePart(zw, p.name, p.v); err != nil {
			return cw.n, err
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("close docx package: %w", err)
	}
	return cw.n, nil
}

func writePart(zw *zip.Writer, name string, v any) error {
	body, err := xml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	f, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.WriteString(f, xml.Header); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if _, err := f.Write(body); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (d *Document) document() xDocument {
	paras := make([]xParagraph, 0, len(d.Body))
	for _, p := range d.Body {
		paras = append(paras, p.toXML())
	}
	m := d.Page.Margin
	return xDocument{
		W: nsW,
		R: nsR,
		Body: xBody{
			Paragraphs: paras,
			SectPr: xSectPr{
				PgSz: xPgSz{W: d.Page.Width, H: d.Page.Height},
				PgMar: xPgMar{
					Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left,
					Header: m.Top, Footer: m.Bottom,
				},
			},
		},
	}
}

func (d *Document) styles() xStyles {
	s := xStyles{W: nsW}
	s.DocDefaults.RPrDefault.RPr = xRPr{
		RFonts: &xRFonts{ASCII: d.Font, HAnsi: d.Font, EastAsia: d.Font, CS: d.Font},
		Sz:     intVal(d.FontSize),
		SzCs:   intVal(d.FontSize),
	}
	s.DocDefaults.PPrDefault.PPr = xPPr{Spacing: &xSpacing{}}

	s.Styles = append(s.Styles, xStyle{
		Type:    "paragraph",
		Default: "1",
		StyleID: "Normal",
		Name:    xVal{Val: "Normal"},
		QFormat: &xEmpty{},
	})
	for _, h := range d.Headings {
		rpr := &xRPr{B: &xEmpty{}}
		if h.Color != "" {
			rpr.Color = val(h.Color)
		}
		if h.Size > 0 {
			rpr.Sz = intVal(h.Size)
			rpr.SzCs = intVal(h.Size)
		}
		s.Styles = append(s.Styles, xStyle{
			Type:    "paragraph",
			StyleID: h.ID,
			Name:    xVal{Val: h.Name},
			BasedOn: val("Normal"),
			Next:    val("Normal"),
			QFormat: &xEmpty{},
			PPr:     &xPPr{KeepNext: &xEmpty{}, OutlineLvl: intVal(h.Level)},
			RPr:     rpr,
		})
	}
	return s
}

func (d *Document) numbering() xNumbering {
	glyph := d.Bullets.Glyph
	if glyph == "" {
		glyph = "•"
	}
	return xNumbering{
		W: nsW,
		AbstractNum: []xAbstractNum{{
			ID:             bulletAbst,
			MultiLevelType: xVal{Val: "singleLevel"},
			Lvl: xLvl{
				Ilvl:    "0",
				Start:   xVal{Val: "1"},
				NumFmt:  xVal{Val: "bullet"},
				LvlText: xVal{Val: glyph},
				LvlJc:   xVal{Val: "left"},
				PPr:     xPPr{Ind: &xInd{Left: d.Bullets.Indent, Hanging: d.Bullets.Hanging}},
			},
		}},
		Num: []xNum{{NumID: bulletNum, AbstractNumID: xVal{Val: bulletAbst}}},
	}
}

func (d *Document) core() xCore {
	return xCore{
		CP:          "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:          "http://purl.org/dc/elements/1.1/",
		DCTerms:     "http://purl.org/dc/terms/",
		Title:       d.Title,
		Creator:     d.Creator,
		Description: d.Description,
	}
}

func contentTypes() xTypes {
	return xTypes{
		Xmlns: "http://schemas.openxmlformats.org/package/2006/content-types",
		Defaults: []xDefault{
			{Extension: "rels", ContentType: "application/vnd.openxmlformats-package.relationships+xml"},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []xOverride{
			{PartName: "/" + partDocument, ContentType: ctBase + "document.main+xml"},
			{PartName: "/" + partStyles, ContentType: ctBase + "styles+xml"},
			{PartName: "/" + partNumbering, ContentType: ctBase + "numbering+xml"},
			{PartName: "/" + partCore, ContentType: "application/vnd.openxmlformats-package.core-properties+xml"},
		},
	}
}

func packageRels() xRelationships {
	return xRelationships{
		Xmlns: "http://schemas.openxmlformats.org/package/2006/relationships",
		Relationships: []xRelationship{
			{ID: "rId1", Type: relBase + "officeDocument", Target: partDocument},
			{ID: "rId2", Type: "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties", Target: partCore},
		},
	}
}

func documentRels() xRelationships {
	return xRelationships{
		Xmlns: "http://schemas.openxmlformats.org/package/2006/relationships",
		Relationships: []xRelationship{
			{ID: "rId1", Type: relBase + "styles", Target: "styles.xml"},
			{ID: "rId2", Type: relBase + "numbering", Target: "numbering.xml"},
		},
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
