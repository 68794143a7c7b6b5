// Package docx assembles the resume as a WordprocessingML document.
package docx

import (
	"strings"

	"resume-docs/internal/dates"
	"resume-docs/internal/layout"
	"resume-docs/internal/model"
	"resume-docs/pkg/wordml"
)

const (
	headingStyleName = "Heading1"
	sectionStyleName = "Heading2"
)

type Option func(*builder)

// WithStyle overrides layout.DefaultStyle.
func WithStyle(s layout.Style) Option {
	return func(b *builder) { b.style = s }
}

// WithCompetencyLayout picks between the tab-stop grid and a single
// comma-joined line.
func WithCompetencyLayout(c layout.Capability) Option {
	return func(b *builder) { b.competencies = c }
}

type builder struct {
	style        layout.Style
	competencies layout.Capability
	doc          *wordml.Document
}

// Build renders doc into a complete .docx package.
func Build(doc *model.Resume, opts ...Option) ([]byte, error) {
	if doc == nil {
		return nil, &BuildError{Message: "no resume document"}
	}
	b := &builder{style: layout.DefaultStyle(), competencies: layout.Grid}
	for _, opt := range opts {
		opt(b)
	}
	b.doc = b.newDocument(doc)

	b.header(doc)
	err := layout.Walk(doc, b.heading, map[layout.SectionKind]func(*model.Resume) error{
		layout.Summary:       b.summary,
		layout.Competencies:  b.competencyRows,
		layout.Experience:    b.experience,
		layout.EarlierCareer: b.earlierCareer,
		layout.Innovation:    b.innovation,
		layout.Projects:      b.projects,
		layout.Skills:        b.skills,
		layout.Education:     b.education,
	})
	if err != nil {
		return nil, &BuildError{Message: "failed to lay out sections", Cause: err}
	}

	out, err := b.doc.Bytes()
	if err != nil {
		return nil, &BuildError{Message: "failed to encode package", Cause: err}
	}
	return out, nil
}

func (b *builder) newDocument(doc *model.Resume) *wordml.Document {
	s := b.style
	return &wordml.Document{
		Title:       doc.Basics.Name + " - Resume",
		Creator:     doc.Basics.Name,
		Description: doc.Basics.Label,
		Font:        s.FontFamily,
		FontSize:    layout.HalfPoints(s.BodyPt),
		Headings: []wordml.HeadingStyle{
			{ID: headingStyleName, Name: "heading 1", Level: 0, Size: layout.HalfPoints(s.NamePt), Color: s.PrimaryColor},
			{ID: sectionStyleName, Name: "heading 2", Level: 1, Size: layout.HalfPoints(s.SectionPt), Color: s.PrimaryColor},
		},
		Bullets: wordml.BulletList{
			Glyph:   s.BulletGlyph,
			Indent:  layout.Inches(0.5).Twips(),
			Hanging: layout.Inches(0.25).Twips(),
		},
		Page: wordml.PageSetup{
			Width:  s.PageWidth.Twips(),
			Height: s.PageHeight.Twips(),
			Margin: wordml.Margins{
				Top:    s.Margin.Top.Twips(),
				Right:  s.Margin.Right.Twips(),
				Bottom: s.Margin.Bottom.Twips(),
				Left:   s.Margin.Left.Twips(),
			},
		},
	}
}

func (b *builder) body(runs ...wordml.Run) {
	b.doc.Add(wordml.Paragraph{Spacing: &wordml.Spacing{After: 80}, Runs: runs})
}

func text(s string) wordml.Run { return wordml.Run{Text: s} }

func bold(s string) wordml.Run { return wordml.Run{Text: s, Bold: true} }

func italic(s string) wordml.Run { return wordml.Run{Text: s, Italic: true} }

func (b *builder) header(doc *model.Resume) {
	s := b.style
	b.doc.Add(wordml.Paragraph{
		Style:   headingStyleName,
		Align:   wordml.AlignCenter,
		Spacing: &wordml.Spacing{After: 40},
		Runs:    []wordml.Run{{Text: doc.Basics.Name, Bold: true, Size: layout.HalfPoints(s.NamePt)}},
	})
	if doc.Basics.Label != "" {
		b.doc.Add(wordml.Paragraph{
			Align:   wordml.AlignCenter,
			Spacing: &wordml.Spacing{After: 40},
			Runs:    []wordml.Run{{Text: doc.Basics.Label, Size: layout.HalfPoints(s.LabelPt), Color: s.AccentColor}},
		})
	}
	if contact := doc.Basics.ContactParts(); len(contact) > 0 {
		b.doc.Add(wordml.Paragraph{
			Align:   wordml.AlignCenter,
			Spacing: &wordml.Spacing{After: 200},
			Runs:    []wordml.Run{text(strings.Join(contact, s.Separator))},
		})
	}
}

func (b *builder) heading(sec layout.Section) error {
	s := b.style
	b.doc.Add(wordml.Paragraph{
		Style:        sectionStyleName,
		Spacing:      &wordml.Spacing{Before: 240, After: 120},
		BottomBorder: &wordml.Border{Color: s.AccentColor, Size: 6, Space: 4},
		Runs: []wordml.Run{{
			Text:  sec.Title,
			Bold:  true,
			Size:  layout.HalfPoints(s.SectionPt),
			Color: s.PrimaryColor,
		}},
	})
	return nil
}

func (b *builder) summary(doc *model.Resume) error {
	for _, p := range doc.Basics.SummaryParagraphs() {
		b.body(text(p))
	}
	return nil
}

func (b *builder) competencyRows(doc *model.Resume) error {
	s := b.style
	rows := layout.CompetencyRows(doc.Competencies, b.competencies, s.CompetencyColumns)
	if b.competencies == layout.LineOnly {
		for _, row := range rows {
			b.body(text(strings.Join(row, ", ")))
		}
		return nil
	}

	width := s.TextWidth().Twips()
	tabs := make([]wordml.TabStop, 0, s.CompetencyColumns-1)
	for i := 1; i < s.CompetencyColumns; i++ {
		tabs = append(tabs, wordml.TabStop{Kind: wordml.TabLeft, Pos: width * i / s.CompetencyColumns})
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, item := range row {
			cells[i] = s.BulletGlyph + " " + item
		}
		b.doc.Add(wordml.Paragraph{
			Spacing: &wordml.Spacing{After: 40},
			Tabs:    tabs,
			Runs:    []wordml.Run{text(strings.Join(cells, "\t"))},
		})
	}
	return nil
}

func (b *builder) experience(doc *model.Resume) error {
	s := b.style
	rightTab := []wordml.TabStop{{Kind: wordml.TabRight, Pos: s.TextWidth().Twips()}}
	for _, job := range doc.Work {
		b.doc.Add(wordml.Paragraph{
			Spacing: &wordml.Spacing{Before: 160, After: 40},
			Tabs:    rightTab,
			Runs: []wordml.Run{
				bold(job.Position),
				text(" at "),
				bold(job.Name),
				{Text: "\t" + dates.FormatRange(job.StartDate, job.EndDate), Italic: true, Color: s.AccentColor},
			},
		})
		if job.Summary != "" {
			b.doc.Add(wordml.Paragraph{Spacing: &wordml.Spacing{After: 40}, Runs: []wordml.Run{italic(job.Summary)}})
		}
		for _, h := range job.Highlights {
			b.doc.Add(wordml.Paragraph{Bullet: true, Spacing: &wordml.Spacing{After: 40}, Runs: []wordml.Run{text(h)}})
		}
	}
	return nil
}

func (b *builder) earlierCareer(doc *model.Resume) error {
	ec := doc.EarlierCareer
	if ec.Summary != "" {
		b.body(text(ec.Summary))
	}
	if line := layout.EarlierCareerLine(ec.Positions, b.style.Separator); line != "" {
		b.body(bold(line))
	}
	return nil
}

func (b *builder) innovation(doc *model.Resume) error {
	for _, item := range doc.Innovation {
		b.body(bold(item.Year+": "), text(layout.InnovationText(item)))
	}
	return nil
}

func (b *builder) projects(doc *model.Resume) error {
	b.body(italic(layout.ProjectsIntro))
	for _, p := range doc.Projects {
		b.body(bold(p.Name+": "), text(p.Description))
	}
	return nil
}

func (b *builder) skills(doc *model.Resume) error {
	for _, cat := range doc.Skills {
		b.body(bold(cat.Name+": "), text(strings.Join(cat.Keywords, ", ")))
	}
	return nil
}

func (b *builder) education(doc *model.Resume) error {
	sep := b.style.Separator
	for _, edu := range doc.Education {
		b.body(bold(layout.Degree(edu)), text(" — "+layout.School(edu, sep)))
		if len(edu.Honors) > 0 {
			b.body(italic(strings.Join(edu.Honors, sep)))
		}
	}
	return nil
}
