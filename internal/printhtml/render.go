// Package printhtml renders the resume as a self-contained HTML page meant to
// be printed to PDF by a headless browser.
package printhtml

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"resume-docs/internal/dates"
	"resume-docs/internal/layout"
	"resume-docs/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"escape":      Escape,
	"dateRange":   dates.FormatRange,
	"join":        strings.Join,
	"earlierLine": layout.EarlierCareerLine,
	"degree":      layout.Degree,
	"school":      layout.School,
	"innovation":  layout.InnovationText,
}

// templates is parsed once; a broken embedded template is a build defect.
var templates = template.Must(template.New("resume").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))

type pageData struct {
	Doc     *model.Resume
	Style   layout.Style
	Contact []string
	CSS     string
	Body    string
}

type sectionData struct {
	Doc   *model.Resume
	Style layout.Style
	Rows  [][]string
	Intro string
}

// Render produces the print HTML for doc. Every value taken from the document
// is escaped once at interpolation; the page references no external resources.
func Render(doc *model.Resume, style layout.Style) (string, error) {
	if doc == nil {
		return "", &TemplateError{Message: "no resume document"}
	}

	var css strings.Builder
	if err := templates.ExecuteTemplate(&css, "style.css.tmpl", style); err != nil {
		return "", &TemplateError{Message: "failed to execute stylesheet", Cause: err}
	}

	var body strings.Builder
	data := sectionData{
		Doc:   doc,
		Style: style,
		Rows:  layout.CompetencyRows(doc.Competencies, layout.Grid, style.CompetencyColumns),
		Intro: layout.ProjectsIntro,
	}
	section := func(name string) func(*model.Resume) error {
		return func(*model.Resume) error {
			return execute(&body, name, data)
		}
	}
	err := layout.Walk(doc, func(s layout.Section) error {
		return execute(&body, "heading", s)
	}, map[layout.SectionKind]func(*model.Resume) error{
		layout.Summary:       section("summary"),
		layout.Competencies:  section("competencies"),
		layout.Experience:    section("experience"),
		layout.EarlierCareer: section("earlier-career"),
		layout.Innovation:    section("innovation"),
		layout.Projects:      section("projects"),
		layout.Skills:        section("skills"),
		layout.Education:     section("education"),
	})
	if err != nil {
		return "", err
	}

	var out strings.Builder
	err = execute(&out, "page", pageData{
		Doc:     doc,
		Style:   style,
		Contact: doc.Basics.ContactParts(),
		CSS:     css.String(),
		Body:    body.String(),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func execute(w *strings.Builder, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return &TemplateError{Message: fmt.Sprintf("failed to execute %q", name), Cause: err}
	}
	return nil
}
