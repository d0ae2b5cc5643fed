// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-drafter/internal/content"
	"github.com/jonathan/resume-drafter/internal/sections"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxBulletPreview is the number of characters of bullet text shown per line
	maxBulletPreview = 48
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Printf writes a plain formatted line to the printer's output stream so
// verbose diagnostics and boxes share one stream.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGenerationRequest outputs a summary of the generation parameters.
func (p *Printer) PrintGenerationRequest(params content.Params, model string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", params.JobTitle))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", params.Industry))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", params.Seniority))
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", params.Name))
	sb.WriteString(fmt.Sprintf("Model:     %s", model))

	p.printBox("GENERATION REQUEST", sb.String())
}

// PrintPayload outputs a human-readable summary of the validated content.
func (p *Printer) PrintPayload(payload *content.Payload) {
	if payload == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name: %s\n", payload.Name))

	for _, section := range sections.All() {
		sb.WriteString("\n")
		sb.WriteString(sections.Heading(section))
		sb.WriteString("\n")
		for _, bullet := range payload.Bullets(section) {
			if len(bullet) > maxBulletPreview {
				bullet = bullet[:maxBulletPreview-3] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", bullet))
		}
	}

	p.printBox("GENERATED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}
