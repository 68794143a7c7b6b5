package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Fixture(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "resume.json"))
	require.NoError(t, err)

	assert.Equal(t, "Alex Rivera", r.Basics.Name)
	require.Len(t, r.Work, 3)
	assert.Equal(t, "Northwind Logistics", r.Work[0].Name)
	assert.Empty(t, r.Work[0].EndDate, "null endDate decodes to empty")
	assert.Empty(t, r.Work[1].Summary, "null summary decodes to empty")
	assert.Empty(t, r.Work[2].Highlights)
	assert.Equal(t, []string{"Magna Cum Laude", "Dean's List"}, r.Education[0].Honors)
	assert.Len(t, r.Innovation, 2)
	assert.Len(t, r.Projects, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_SummaryAsList(t *testing.T) {
	r, err := Parse([]byte(`{"basics":{"name":"A","summary":["one","two"]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, r.Basics.SummaryParagraphs())
}

func TestParse_AboutFallback(t *testing.T) {
	r, err := Parse([]byte(`{"basics":{"name":"A","about":"from about"}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"from about"}, r.Basics.SummaryParagraphs())
}

func TestParse_MissingArraysAreValid(t *testing.T) {
	r, err := Parse([]byte(`{"basics":{"name":"A"}}`))
	require.NoError(t, err)
	assert.Nil(t, r.Work)
	assert.Nil(t, r.Skills)
	assert.Nil(t, r.Education)
	assert.Nil(t, r.Basics.SummaryParagraphs())
}

func TestParse_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing basics", `{}`},
		{"missing name", `{"basics":{}}`},
		{"work not a list", `{"basics":{"name":"A"},"work":{}}`},
		{"work entry missing position", `{"basics":{"name":"A"},"work":[{"name":"Acme","startDate":"2020"}]}`},
		{"bad start date", `{"basics":{"name":"A"},"work":[{"name":"Acme","position":"Eng","startDate":"June 2020"}]}`},
		{"highlights wrong type", `{"basics":{"name":"A"},"work":[{"name":"Acme","position":"Eng","startDate":"2020","highlights":"x"}]}`},
		{"keywords wrong type", `{"basics":{"name":"A"},"skills":[{"name":"Go","keywords":[1,2]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.NotEmpty(t, shapeErr.Violations)
		})
	}
}

func TestParse_NotJSON(t *testing.T) {
	_, err := Parse([]byte(`{"basics":`))
	require.Error(t, err)
	var shapeErr *ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestBasics_ContactParts(t *testing.T) {
	b := Basics{
		Email:    "a@example.com",
		Location: Location{City: "Austin", Region: "TX"},
		Profiles: []Profile{{Network: "GitHub", URL: "https://github.com/a"}, {Network: "Empty"}},
	}
	assert.Equal(t, []string{"Austin, TX", "a@example.com", "https://github.com/a"}, b.ContactParts())
	assert.Empty(t, Basics{}.ContactParts())
}

func TestEducation_Year(t *testing.T) {
	assert.Equal(t, "2009", Education{StartDate: "2005", EndDate: "2009"}.Year())
	assert.Equal(t, "2005", Education{StartDate: "2005"}.Year())
}
