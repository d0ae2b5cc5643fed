package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-drafter/internal/drafter"
)

var interactiveCommand = &cobra.Command{
	Use:   "interactive",
	Short: "Generate resume drafts in an interactive prompt loop",
	Long: `Repeatedly prompts for a job title, industry and seniority level on
standard input and generates a document for each answer set. Empty answers
are re-asked. The loop is pure I/O glue around the same single-shot core the
generate command uses.`,
	RunE: runInteractiveCmd,
}

func init() {
	interactiveCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file")
	interactiveCommand.Flags().StringVarP(&genName, "name", "n", "", "Candidate display name")
	interactiveCommand.Flags().StringVarP(&genOutputDir, "out-dir", "o", "", "Directory to write documents to")
	interactiveCommand.Flags().StringVar(&genModel, "model", "", "Model identifier (optional, has a default)")
	interactiveCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	interactiveCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(interactiveCommand)
}

// promptNonEmpty keeps asking until the user enters a non-blank line.
// Returns io.EOF when input is closed.
func promptNonEmpty(reader *bufio.Reader, label string) (string, error) {
	for {
		fmt.Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		if answer := strings.TrimSpace(line); answer != "" {
			return answer, nil
		}
	}
}

func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	d, err := drafter.New(ctx, cfg.APIKey, drafter.Options{
		Model:         cfg.Model,
		CandidateName: cfg.Name,
		OutputDir:     cfg.OutputDir,
		Verbose:       cfg.Verbose,
	})
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	reader := bufio.NewReader(os.Stdin)
	for {
		jobTitle, err := promptNonEmpty(reader, "Enter target job title")
		if err != nil {
			break
		}
		industry, err := promptNonEmpty(reader, "Enter industry")
		if err != nil {
			break
		}
		seniority, err := promptNonEmpty(reader, "Enter seniority level")
		if err != nil {
			break
		}

		fmt.Printf("Generating content...\n")
		result, err := d.Draft(ctx, drafter.Request{
			JobTitle:  jobTitle,
			Industry:  industry,
			Seniority: seniority,
		})
		if err != nil {
			// A failed draft aborts this request only; the loop continues.
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("Saved: %s\n", result.OutputPath)
		}

		fmt.Printf("\nGenerate another? (y/n): ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if strings.ToLower(strings.TrimSpace(line)) != "y" {
			break
		}
	}

	return nil
}
