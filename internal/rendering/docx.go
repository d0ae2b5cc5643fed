package rendering

import (
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"github.com/jonathan/resume-drafter/internal/content"
	"github.com/jonathan/resume-drafter/internal/sections"
)

// Layout constants. The layout is a pure function of section order and the
// exactly-3-bullets invariant, so a fixed geometry always fits one page.
// Overly long bullet text may overflow its cell visually; that is accepted
// rather than reflowed.
const (
	fontFamily  = "Poppins"
	titleSize   = 22 * measurement.Point
	headingSize = 11 * measurement.Point
	bodySize    = 10 * measurement.Point

	pageMargin   = 0.5 * measurement.Inch
	bulletIndent = 0.15 * measurement.Inch

	bulletPrefix = "• "
)

// Build constructs the in-memory one-page document: a centered title with
// the candidate name, then a 4x2 table holding the 8 sections in layout
// order, two per row. Content placement never depends on content length.
func Build(payload *content.Payload) *document.Document {
	doc := document.New()

	// Tight margins to maximize usable area for the one-page constraint.
	doc.BodySection().SetPageMargins(
		pageMargin, pageMargin, pageMargin, pageMargin,
		pageMargin, pageMargin, 0)

	title := doc.AddParagraph()
	title.Properties().SetAlignment(wml.ST_JcCenter)
	titleRun := title.AddRun()
	titleRun.Properties().SetFontFamily(fontFamily)
	titleRun.Properties().SetSize(titleSize)
	titleRun.AddText(payload.Name)

	table := doc.AddTable()
	table.Properties().SetWidthPercent(100)

	rows := make([]document.Row, sections.Rows())
	for i := range rows {
		rows[i] = table.AddRow()
		for c := 0; c < sections.Columns; c++ {
			cell := rows[i].AddCell()
			cell.Properties().SetWidthPercent(100 / sections.Columns)
		}
	}

	for i, section := range sections.All() {
		row, col := sections.GridPosition(i)
		fillCell(rows[row].Cells()[col], section, payload.Bullets(section))
	}

	return doc
}

// Render builds the document and persists it at the given path.
func Render(payload *content.Payload, path string) error {
	doc := Build(payload)
	if err := doc.SaveToFile(path); err != nil {
		return &RenderError{Message: "failed to save document", Cause: err}
	}
	return nil
}

// fillCell writes one section into its grid cell: a bold heading followed by
// the 3 bullet paragraphs with no spacing between them.
func fillCell(cell document.Cell, section string, bullets []string) {
	heading := cell.AddParagraph()
	headingRun := heading.AddRun()
	headingRun.Properties().SetFontFamily(fontFamily)
	headingRun.Properties().SetSize(headingSize)
	headingRun.Properties().SetBold(true)
	headingRun.AddText(sections.Heading(section))

	for _, bullet := range bullets {
		para := cell.AddParagraph()
		para.Properties().SetStartIndent(bulletIndent)
		para.Properties().Spacing().SetAfter(0)

		run := para.AddRun()
		run.Properties().SetFontFamily(fontFamily)
		run.Properties().SetSize(bodySize)
		run.AddText(bulletPrefix + bullet)
	}
}
