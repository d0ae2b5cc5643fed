// Package drafter provides the high-level orchestration for producing a
// resume document: validate parameters, generate content, render the DOCX.
// Each call is independent and stateless; the only long-lived state is the
// LLM client connection.
package drafter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-drafter/internal/content"
	"github.com/jonathan/resume-drafter/internal/llm"
	"github.com/jonathan/resume-drafter/internal/observability"
	"github.com/jonathan/resume-drafter/internal/rendering"
)

// outputTimeFormat names output files at second granularity, which keeps
// filenames unique across runs without any overwrite handling.
const outputTimeFormat = "20060102_150405"

var validate = validator.New()

// Request holds the per-invocation generation parameters.
type Request struct {
	JobTitle  string `validate:"required"`
	Industry  string `validate:"required"`
	Seniority string `validate:"required"`
}

// Options holds process-wide settings applied to every draft.
type Options struct {
	Model         string
	CandidateName string
	OutputDir     string
	Verbose       bool
}

// Result describes a completed draft.
type Result struct {
	RunID      uuid.UUID
	Payload    *content.Payload
	OutputPath string
}

// Drafter turns generation requests into rendered documents.
type Drafter struct {
	client  llm.Client
	opts    Options
	printer *observability.Printer
}

// New creates a Drafter backed by a Gemini client. The API key is required;
// its absence is reported before any network work is attempted.
func New(ctx context.Context, apiKey string, opts Options) (*Drafter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(opts.Model), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return NewWithClient(client, opts), nil
}

// NewWithClient creates a Drafter with an externally constructed client.
func NewWithClient(client llm.Client, opts Options) *Drafter {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	return &Drafter{
		client:  client,
		opts:    opts,
		printer: observability.NewPrinter(os.Stdout),
	}
}

// Close releases the underlying client.
func (d *Drafter) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}

// Draft runs one request end-to-end and returns the path of the rendered
// document. No partial document is produced on failure.
func (d *Drafter) Draft(ctx context.Context, req Request) (*Result, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid generation parameters: %w", err)
	}

	runID := uuid.New()
	params := content.Params{
		JobTitle:  req.JobTitle,
		Industry:  req.Industry,
		Seniority: req.Seniority,
		Name:      d.opts.CandidateName,
	}

	if d.opts.Verbose {
		d.printer.Printf("[VERBOSE] Run %s\n", runID)
		d.printer.PrintGenerationRequest(params, d.client.GetModel())
	}

	payload, err := content.NewGenerator(d.client).Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	if d.opts.Verbose {
		d.printer.PrintPayload(payload)
	}

	outputPath := filepath.Join(d.opts.OutputDir,
		fmt.Sprintf("resume_%s.docx", time.Now().Format(outputTimeFormat)))

	if err := rendering.Render(payload, outputPath); err != nil {
		return nil, fmt.Errorf("document rendering failed: %w", err)
	}

	return &Result{
		RunID:      runID,
		Payload:    payload,
		OutputPath: outputPath,
	}, nil
}
