package layout

import (
	"strings"

	"resume-docs/internal/model"
)

// Text shapes shared by every backend so both outputs carry identical wording.

// EarlierCareerLine renders "{employer} {title} ({year})" entries joined by sep.
func EarlierCareerLine(positions []model.EarlierPosition, sep string) string {
	parts := make([]string, 0, len(positions))
	for _, p := range positions {
		entry := p.Name + " " + p.Position
		if p.Year != "" {
			entry += " (" + p.Year + ")"
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, sep)
}

// Degree renders "{studyType}, {area}".
func Degree(e model.Education) string {
	if e.Area == "" {
		return e.StudyType
	}
	return e.StudyType + ", " + e.Area
}

// School renders "{institution}{sep}{year}".
func School(e model.Education, sep string) string {
	if y := e.Year(); y != "" {
		return e.Institution + sep + y
	}
	return e.Institution
}

// InnovationText renders "{title} — {description}".
func InnovationText(item model.InnovationItem) string {
	if item.Description == "" {
		return item.Title
	}
	return item.Title + " — " + item.Description
}
