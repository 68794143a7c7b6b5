package docx

import (
	"path/filepath"
	"strings"
	"testing"

	"resume-docs/internal/layout"
	"resume-docs/internal/model"
	"resume-docs/pkg/wordml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, doc *model.Resume, opts ...Option) []wordml.ParagraphInfo {
	t.Helper()
	data, err := Build(doc, opts...)
	require.NoError(t, err)
	paras, err := wordml.ReadParagraphs(data)
	require.NoError(t, err)
	return paras
}

func bullets(paras []wordml.ParagraphInfo) []string {
	var out []string
	for _, p := range paras {
		if p.Bullet {
			out = append(out, p.Text())
		}
	}
	return out
}

// jobHeaders finds "Position at Employer\tdates" lines.
func jobHeaders(paras []wordml.ParagraphInfo) []wordml.ParagraphInfo {
	var out []wordml.ParagraphInfo
	for _, p := range paras {
		if len(p.Runs) == 4 && p.Runs[0].Bold && p.Runs[1].Text == " at " && p.Runs[2].Bold {
			out = append(out, p)
		}
	}
	return out
}

func indexOf(paras []wordml.ParagraphInfo, text string) int {
	for i, p := range paras {
		if p.Text() == text {
			return i
		}
	}
	return -1
}

func TestBuild_MinimalSingleJob(t *testing.T) {
	doc := &model.Resume{
		Basics: model.Basics{Name: "Sam"},
		Work: []model.WorkEntry{{
			Name:       "Acme",
			Position:   "Engineer",
			StartDate:  "2020-01",
			Highlights: []string{"Did thing"},
		}},
	}
	paras := build(t, doc)

	var all strings.Builder
	for _, p := range paras {
		all.WriteString(p.Text())
		all.WriteString("\n")
	}
	assert.Contains(t, all.String(), "Jan 2020 – Present")
	assert.Equal(t, []string{"Did thing"}, bullets(paras))

	headers := jobHeaders(paras)
	require.Len(t, headers, 1)
	assert.Equal(t, "Engineer at Acme\tJan 2020 – Present", headers[0].Text())
}

func TestBuild_FixtureCounts(t *testing.T) {
	doc, err := model.Load(filepath.Join("..", "model", "testdata", "resume.json"))
	require.NoError(t, err)

	paras := build(t, doc)

	assert.Len(t, jobHeaders(paras), len(doc.Work))
	total := 0
	for _, w := range doc.Work {
		total += len(w.Highlights)
	}
	assert.Len(t, bullets(paras), total)
}

func TestBuild_EmptyHighlightsRenderNoBullets(t *testing.T) {
	doc := &model.Resume{
		Basics: model.Basics{Name: "Sam"},
		Work: []model.WorkEntry{
			{Name: "A", Position: "P1", StartDate: "2020", Highlights: []string{}},
			{Name: "B", Position: "P2", StartDate: "2018"},
		},
	}
	paras := build(t, doc)
	assert.Len(t, jobHeaders(paras), 2)
	assert.Empty(t, bullets(paras))
}

func TestBuild_OptionalJobSummaryIsItalic(t *testing.T) {
	doc := &model.Resume{
		Basics: model.Basics{Name: "Sam"},
		Work: []model.WorkEntry{
			{Name: "A", Position: "P1", StartDate: "2020", Summary: "Led the team."},
			{Name: "B", Position: "P2", StartDate: "2018"},
		},
	}
	paras := build(t, doc)
	i := indexOf(paras, "Led the team.")
	require.NotEqual(t, -1, i)
	assert.True(t, paras[i].Runs[0].Italic)
	// The second entry has no summary, so its header is followed by the next heading.
	j := indexOf(paras, "P2 at B\t2018 – Present")
	require.NotEqual(t, -1, j)
	assert.Equal(t, "Earlier Career", paras[j+1].Text())
}

func TestBuild_SectionHeadingsFollowPlan(t *testing.T) {
	doc, err := model.Load(filepath.Join("..", "model", "testdata", "resume.json"))
	require.NoError(t, err)

	data, err := Build(doc)
	require.NoError(t, err)
	headings, err := SectionHeadings(data)
	require.NoError(t, err)
	assert.Equal(t, layout.Titles(doc), headings)
	assert.Contains(t, headings, "Innovation & Technology Leadership")
	assert.Contains(t, headings, "Open Source & AI Projects")
}

func TestBuild_MissingSummaryKeepsHeadingWithEmptyBody(t *testing.T) {
	paras := build(t, &model.Resume{Basics: model.Basics{Name: "Sam"}})

	i := indexOf(paras, "Professional Summary")
	require.NotEqual(t, -1, i)
	assert.Equal(t, "Core Competencies", paras[i+1].Text())
}

func TestBuild_MissingArraysRenderEmptySections(t *testing.T) {
	data, err := Build(&model.Resume{Basics: model.Basics{Name: "Sam"}})
	require.NoError(t, err)

	headings, err := SectionHeadings(data)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Professional Summary",
		"Core Competencies",
		"Professional Experience",
		"Earlier Career",
		"Technical Skills",
		"Education",
	}, headings)
}

func TestBuild_HonorsLineOnlyWhenPresent(t *testing.T) {
	doc := &model.Resume{
		Basics: model.Basics{Name: "Sam"},
		Education: []model.Education{
			{StudyType: "BS", Area: "CS", Institution: "State U", EndDate: "2009", Honors: []string{}},
			{StudyType: "MS", Area: "Math", Institution: "Tech", StartDate: "2010", Honors: []string{"Distinction", "Fellowship"}},
		},
	}
	paras := build(t, doc)

	first := indexOf(paras, "BS, CS — State U  |  2009")
	require.NotEqual(t, -1, first)
	assert.Equal(t, "MS, Math — Tech  |  2010", paras[first+1].Text())

	honors := indexOf(paras, "Distinction  |  Fellowship")
	require.NotEqual(t, -1, honors)
	assert.True(t, paras[honors].Runs[0].Italic)
}

func TestBuild_CompetenciesGrid(t *testing.T) {
	doc := &model.Resume{
		Basics:       model.Basics{Name: "Sam"},
		Competencies: []string{"Go", "Kubernetes", "Terraform", "CI/CD"},
	}
	paras := build(t, doc)
	assert.NotEqual(t, -1, indexOf(paras, "• Go\t• Kubernetes\t• Terraform"))
	assert.NotEqual(t, -1, indexOf(paras, "• CI/CD"))
}

func TestBuild_CompetenciesLineOnly(t *testing.T) {
	doc := &model.Resume{
		Basics:       model.Basics{Name: "Sam"},
		Competencies: []string{"Go", "Kubernetes", "Terraform", "CI/CD"},
	}
	paras := build(t, doc, WithCompetencyLayout(layout.LineOnly))
	assert.NotEqual(t, -1, indexOf(paras, "Go, Kubernetes, Terraform, CI/CD"))
}

func TestBuild_HeaderContactLine(t *testing.T) {
	doc := &model.Resume{Basics: model.Basics{
		Name:     "Sam",
		Label:    "Engineer",
		Email:    "sam@example.com",
		Location: model.Location{City: "Austin", Region: "TX"},
		Profiles: []model.Profile{{Network: "GitHub", URL: "https://github.com/sam"}},
	}}
	paras := build(t, doc)
	require.GreaterOrEqual(t, len(paras), 3)
	assert.Equal(t, "Sam", paras[0].Text())
	assert.Equal(t, "center", paras[0].Align)
	assert.Equal(t, "Engineer", paras[1].Text())
	assert.Equal(t, "Austin, TX  |  sam@example.com  |  https://github.com/sam", paras[2].Text())
}

func TestBuild_HeaderSkipsEmptyLabelAndContact(t *testing.T) {
	paras := build(t, &model.Resume{Basics: model.Basics{Name: "Sam"}})
	require.NotEmpty(t, paras)
	assert.Equal(t, "Sam", paras[0].Text())

	first := -1
	for i, p := range paras {
		if p.Style == sectionStyleName {
			first = i
			break
		}
	}
	assert.Equal(t, 1, first, "only the name precedes the first section heading")
}

func TestBuild_EarlierCareerAndSkills(t *testing.T) {
	doc := &model.Resume{
		Basics: model.Basics{Name: "Sam"},
		EarlierCareer: model.EarlierCareer{
			Summary: "Before that.",
			Positions: []model.EarlierPosition{
				{Name: "Initech", Position: "Analyst", Year: "2005"},
				{Name: "Globex", Position: "Intern", Year: "2003"},
			},
		},
		Skills: []model.SkillCategory{{Name: "Languages", Keywords: []string{"Go", "Rust"}}},
	}
	paras := build(t, doc)

	summary := indexOf(paras, "Before that.")
	require.NotEqual(t, -1, summary)
	assert.Equal(t, "Initech Analyst (2005)  |  Globex Intern (2003)", paras[summary+1].Text())

	skills := indexOf(paras, "Languages: Go, Rust")
	require.NotEqual(t, -1, skills)
	assert.True(t, paras[skills].Runs[0].Bold)
	assert.False(t, paras[skills].Runs[1].Bold)
}

func TestBuild_NilDocument(t *testing.T) {
	_, err := Build(nil)
	var buildErr *BuildError
	assert.ErrorAs(t, err, &buildErr)
}
