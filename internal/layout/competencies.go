package layout

import "fmt"

// Capability describes how well an output format lays out columns.
type Capability int

const (
	// Grid formats can align items into columns.
	Grid Capability = iota
	// LineOnly formats get every item on a single comma-joined line.
	LineOnly
)

// ParseCapability maps the config values "grid" and "line".
func ParseCapability(s string) (Capability, error) {
	switch s {
	case "", "grid":
		return Grid, nil
	case "line":
		return LineOnly, nil
	}
	return Grid, fmt.Errorf("unknown competency layout %q", s)
}

func (c Capability) String() string {
	if c == LineOnly {
		return "line"
	}
	return "grid"
}

// CompetencyRows arranges items for a format. Grid formats get rows of
// columns items (the last row may be short); LineOnly gets one row with
// everything. Item order is preserved either way.
func CompetencyRows(items []string, c Capability, columns int) [][]string {
	if len(items) == 0 {
		return nil
	}
	if c == LineOnly || columns <= 1 {
		return [][]string{items}
	}
	rows := make([][]string, 0, (len(items)+columns-1)/columns)
	for i := 0; i < len(items); i += columns {
		end := i + columns
		if end > len(items) {
			end = len(items)
		}
		rows = append(rows, items[i:end])
	}
	return rows
}
