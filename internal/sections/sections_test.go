package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_OrderIsStable(t *testing.T) {
	expected := []string{
		"career_overview",
		"summary_profile",
		"core_technical_competencies",
		"work_experience",
		"academic_history",
		"contact_information",
		"professional_development",
		"technical_skills_matrix",
	}

	assert.Equal(t, expected, All())
	assert.Equal(t, 8, Count())
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0] = "mutated"

	assert.Equal(t, "career_overview", All()[0])
}

func TestHeading(t *testing.T) {
	tests := []struct {
		identifier string
		expected   string
	}{
		{"career_overview", "CAREER OVERVIEW"},
		{"technical_skills_matrix", "TECHNICAL SKILLS MATRIX"},
		{"summary_profile", "SUMMARY PROFILE"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.expected, Heading(tt.identifier))
		})
	}
}

func TestGridPosition_RowMajorTwoPerRow(t *testing.T) {
	expected := [][2]int{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
		{2, 0}, {2, 1},
		{3, 0}, {3, 1},
	}

	for i := range All() {
		row, col := GridPosition(i)
		assert.Equal(t, expected[i][0], row, "row for index %d", i)
		assert.Equal(t, expected[i][1], col, "col for index %d", i)
	}
}

func TestRows(t *testing.T) {
	assert.Equal(t, 4, Rows())
}
