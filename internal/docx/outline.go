package docx

import "resume-docs/pkg/wordml"

// SectionHeadings lists the section heading texts of a built document in order.
func SectionHeadings(data []byte) ([]string, error) {
	paras, err := wordml.ReadParagraphs(data)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range paras {
		if p.Style == sectionStyleName {
			out = append(out, p.Text())
		}
	}
	return out, nil
}
