package model

import (
	"encoding/json"
	"fmt"
)

// Go models that match resume.schema.json. The document is read once per
// generation run and never mutated.

// Paragraphs accepts either a single JSON string or an array of strings.
type Paragraphs []string

func (p *Paragraphs) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*p = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		if one == "" {
			*p = nil
		} else {
			*p = Paragraphs{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("paragraphs must be a string or a list of strings: %w", err)
	}
	*p = many
	return nil
}

type Location struct {
	City   string `json:"city"`
	Region string `json:"region"`
}

// String renders "City, Region", dropping whichever half is missing.
func (l Location) String() string {
	switch {
	case l.City != "" && l.Region != "":
		return l.City + ", " + l.Region
	case l.City != "":
		return l.City
	default:
		return l.Region
	}
}

type Profile struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

type Basics struct {
	Name     string     `json:"name"`
	Label    string     `json:"label"`
	Summary  Paragraphs `json:"summary,omitempty"`
	About    Paragraphs `json:"about,omitempty"`
	Email    string     `json:"email,omitempty"`
	URL      string     `json:"url,omitempty"`
	Location Location   `json:"location"`
	Profiles []Profile  `json:"profiles,omitempty"`
}

// SummaryParagraphs prefers summary and falls back to about.
func (b Basics) SummaryParagraphs() []string {
	if len(b.Summary) > 0 {
		return b.Summary
	}
	return b.About
}

// ContactParts lists the non-empty contact tokens in display order:
// location, email, website, then every profile URL.
func (b Basics) ContactParts() []string {
	var parts []string
	if loc := b.Location.String(); loc != "" {
		parts = append(parts, loc)
	}
	if b.Email != "" {
		parts = append(parts, b.Email)
	}
	if b.URL != "" {
		parts = append(parts, b.URL)
	}
	for _, p := range b.Profiles {
		if p.URL != "" {
			parts = append(parts, p.URL)
		}
	}
	return parts
}

// WorkEntry is one position. An empty EndDate means the role is current.
type WorkEntry struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type EarlierPosition struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Year     string `json:"year"`
}

type EarlierCareer struct {
	Summary   string            `json:"summary,omitempty"`
	Positions []EarlierPosition `json:"positions,omitempty"`
}

type SkillCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

type Education struct {
	StudyType   string   `json:"studyType"`
	Area        string   `json:"area"`
	Institution string   `json:"institution"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Honors      []string `json:"honors,omitempty"`
}

// Year is the graduation year, or the start year when no end is recorded.
func (e Education) Year() string {
	if e.EndDate != "" {
		return e.EndDate
	}
	return e.StartDate
}

type InnovationItem struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	Domain      string   `json:"domain,omitempty"`
	Tagline     string   `json:"tagline,omitempty"`
	Packages    []string `json:"packages,omitempty"`
}

// Resume is the canonical document both generators consume.
type Resume struct {
	Basics        Basics           `json:"basics"`
	Competencies  []string         `json:"competencies,omitempty"`
	Work          []WorkEntry      `json:"work,omitempty"`
	EarlierCareer EarlierCareer    `json:"earlierCareer"`
	Skills        []SkillCategory  `json:"skills,omitempty"`
	Education     []Education      `json:"education,omitempty"`
	Innovation    []InnovationItem `json:"innovation,omitempty"`
	Projects      []Project        `json:"projects,omitempty"`
}
