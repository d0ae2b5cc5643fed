// Package main provides the entry point for the resume drafter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_drafter",
	Short: "One-page resume draft generator",
	Long:  "Resume Drafter generates a one-page DOCX resume draft for a target job title, industry and seniority level using LLM-generated content in a fixed two-column layout.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
