// Package sections defines the fixed set of resume content sections and the
// page geometry derived from it. The identifier order is the single source of
// truth for both the generation schema and the rendered layout.
package sections

import "strings"

// BulletsPerSection is the exact number of bullet strings every section holds.
const BulletsPerSection = 3

// Columns is the number of columns in the rendered section grid.
const Columns = 2

// identifiers lists the 8 section identifiers in layout order.
// Sections fill the grid row-major, two per row.
var identifiers = []string{
	"career_overview",
	"summary_profile",
	"core_technical_competencies",
	"work_experience",
	"academic_history",
	"contact_information",
	"professional_development",
	"technical_skills_matrix",
}

// All returns the section identifiers in layout order.
// The returned slice is a copy; callers may not mutate the canonical order.
func All() []string {
	out := make([]string, len(identifiers))
	copy(out, identifiers)
	return out
}

// Count returns the number of sections.
func Count() int {
	return len(identifiers)
}

// Heading converts a section identifier to its display heading:
// underscores become spaces and the result is upper-cased.
func Heading(identifier string) string {
	return strings.ToUpper(strings.ReplaceAll(identifier, "_", " "))
}

// GridPosition maps a section's layout index to its (row, column) cell.
func GridPosition(index int) (row, col int) {
	return index / Columns, index % Columns
}

// Rows returns the number of grid rows needed to hold all sections.
func Rows() int {
	return (len(identifiers) + Columns - 1) / Columns
}
