package wordml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RunInfo is a decoded run.
type RunInfo struct {
	Text   string
	Bold   bool
	Italic bool
}

// ParagraphInfo is a decoded body paragraph. Tabs read back as '\t' and line
// breaks as '\n'.
type ParagraphInfo struct {
	Style  string
	Align  string
	Bullet bool
	Runs   []RunInfo
}

// Text concatenates every run.
func (p ParagraphInfo) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// ErrPartNotFound is returned when a package lacks a requested part.
var ErrPartNotFound = errors.New("docx part not found")

// ReadPart returns the raw bytes of one part of a .docx package.
func ReadPart(data []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx package: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
}

// ReadParagraphs decodes the body paragraphs of a .docx package.
func ReadParagraphs(data []byte) ([]ParagraphInfo, error) {
	body, err := ReadPart(data, partDocument)
	if err != nil {
		return nil, err
	}

	var (
		paras  []ParagraphInfo
		cur    *ParagraphInfo
		run    *RunInfo
		inText bool
	)
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", partDocument, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				paras = append(paras, ParagraphInfo{})
				cur = &paras[len(paras)-1]
			case "pStyle":
				if cur != nil {
					cur.Style = attr(t, "val")
				}
			case "jc":
				if cur != nil && run == nil {
					cur.Align = attr(t, "val")
				}
			case "numPr":
				if cur != nil {
					cur.Bullet = true
				}
			case "r":
				if cur != nil {
					cur.Runs = append(cur.Runs, RunInfo{})
					run = &cur.Runs[len(cur.Runs)-1]
				}
			case "b":
				if run != nil {
					run.Bold = true
				}
			case "i":
				if run != nil {
					run.Italic = true
				}
			case "t":
				inText = run != nil
			case "tab":
				if run != nil {
					run.Text += "\t"
				}
			case "br":
				if run != nil {
					run.Text += "\n"
				}
			}
		case xml.CharData:
			if inText {
				run.Text += string(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "r":
				run = nil
			case "p":
				cur = nil
			}
		}
	}
	return paras, nil
}

func attr(e xml.StartElement, local string) string {
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
