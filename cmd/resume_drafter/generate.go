package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-drafter/internal/config"
	"github.com/jonathan/resume-drafter/internal/drafter"
	"github.com/jonathan/resume-drafter/internal/rendering"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a one-page resume draft for a target role",
	Long: `Generates resume content for the given job title, industry and seniority
level and renders it into a timestamped one-page DOCX file.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath string
	genJobTitle   string
	genIndustry   string
	genSeniority  string
	genName       string
	genModel      string
	genAPIKey     string
	genOutputDir  string
	genVerbose    bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genJobTitle, "job-title", "j", "", "Target job title (required)")
	generateCommand.Flags().StringVarP(&genIndustry, "industry", "i", "", "Target industry")
	generateCommand.Flags().StringVarP(&genSeniority, "seniority", "s", "", "Target seniority level")
	generateCommand.Flags().StringVarP(&genName, "name", "n", "", "Candidate display name")
	generateCommand.Flags().StringVarP(&genOutputDir, "out-dir", "o", "", "Directory to write the document to")
	generateCommand.Flags().StringVar(&genModel, "model", "", "Model identifier (optional, has a default)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	_ = generateCommand.MarkFlagRequired("job-title")

	rootCmd.AddCommand(generateCommand)
}

// resolveConfig merges config file values, CLI overrides, defaults and the
// environment into the effective configuration.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}

		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("name") {
		cfg.Name = genName
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = genModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = genOutputDir
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	// Step 3: Environment fallbacks for unset values (.env is loaded at startup)
	cfg = applyEnvDefaults(cfg)

	// Step 4: Apply defaults for values still unset
	defaults := config.Config{
		Name:      "Your Name",
		Seniority: "Senior",
		Industry:  "software engineering",
		OutputDir: ".",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 5: API key handling. Missing credential terminates here, before
	// any client is constructed or network call attempted.
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Step 6: Document license handling. The DOCX library refuses to write
	// without a registered license key, so its absence is fatal here too.
	if err := rendering.InitLicenseFromEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnvDefaults fills unset config values from the environment.
func applyEnvDefaults(cfg config.Config) config.Config {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = os.Getenv("GEMINI_MODEL")
	}
	if cfg.Name == "" {
		cfg.Name = os.Getenv("CANDIDATE_NAME")
	}
	if cfg.Seniority == "" {
		cfg.Seniority = os.Getenv("TARGET_SENIORITY")
	}
	if cfg.Industry == "" {
		cfg.Industry = os.Getenv("INDUSTRY_CONTEXT")
	}
	return cfg
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Per-request values fall back to config defaults
	industry := genIndustry
	if industry == "" {
		industry = cfg.Industry
	}
	seniority := genSeniority
	if seniority == "" {
		seniority = cfg.Seniority
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

	fmt.Printf("Generating content...\n")
	result, err := d.Draft(ctx, drafter.Request{
		JobTitle:  genJobTitle,
		Industry:  industry,
		Seniority: seniority,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved: %s\n", result.OutputPath)
	return nil
}
