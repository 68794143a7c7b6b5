package layout

import "resume-docs/internal/model"

// SectionKind identifies a section body builder.
type SectionKind string

const (
	Summary       SectionKind = "summary"
	Competencies  SectionKind = "competencies"
	Experience    SectionKind = "experience"
	EarlierCareer SectionKind = "earlier-career"
	Innovation    SectionKind = "innovation"
	Projects      SectionKind = "projects"
	Skills        SectionKind = "skills"
	Education     SectionKind = "education"
)

// Section is one heading plus body. Core sections always render their heading,
// even with an empty body. Optional sections disappear when empty.
type Section struct {
	Kind     SectionKind
	Title    string
	Optional bool
	present  func(*model.Resume) bool
}

// ProjectsIntro is the lead-in line of the projects section.
const ProjectsIntro = "Selected open-source contributions and personal projects:"

// Canonical is the fixed section order shared by every output format.
var Canonical = []Section{
	{Kind: Summary, Title: "Professional Summary"},
	{Kind: Competencies, Title: "Core Competencies"},
	{Kind: Experience, Title: "Professional Experience"},
	{Kind: EarlierCareer, Title: "Earlier Career"},
	{
		Kind:     Innovation,
		Title:    "Innovation & Technology Leadership",
		Optional: true,
		present:  func(r *model.Resume) bool { return len(r.Innovation) > 0 },
	},
	{
		Kind:     Projects,
		Title:    "Open Source & AI Projects",
		Optional: true,
		present:  func(r *model.Resume) bool { return len(r.Projects) > 0 },
	},
	{Kind: Skills, Title: "Technical Skills"},
	{Kind: Education, Title: "Education"},
}

// Plan returns the sections to render for doc, in canonical order.
func Plan(doc *model.Resume) []Section {
	out := make([]Section, 0, len(Canonical))
	for _, s := range Canonical {
		if s.Optional && !s.present(doc) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Titles lists the headings Plan would produce.
func Titles(doc *model.Resume) []string {
	plan := Plan(doc)
	titles := make([]string, len(plan))
	for i, s := range plan {
		titles[i] = s.Title
	}
	return titles
}

// Walk calls the body builder registered for each planned section, after
// heading. A kind without a builder is an error so a new section can never be
// dropped silently by one backend.
func Walk(doc *model.Resume, heading func(Section) error, bodies map[SectionKind]func(*model.Resume) error) error {
	for _, s := range Plan(doc) {
		body, ok := bodies[s.Kind]
		if !ok {
			return &MissingBuilderError{Kind: s.Kind}
		}
		if err := heading(s); err != nil {
			return err
		}
		if err := body(doc); err != nil {
			return err
		}
	}
	return nil
}

// MissingBuilderError is returned by Walk for a section kind with no body builder.
type MissingBuilderError struct {
	Kind SectionKind
}

func (e *MissingBuilderError) Error() string {
	return "no body builder for section " + string(e.Kind)
}
