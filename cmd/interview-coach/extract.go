package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/extract"
	"github.com/jonathan/interview-coach/internal/fetch"
	"github.com/jonathan/interview-coach/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a job posting from a URL",
	Long:  "Fetch a job posting URL, run the heuristic extractor, validate the result, and write job_posting.json. Useful for debugging extraction without running the bot.",
	RunE:  runExtract,
}

var (
	extractURL string
	extractOut string
)

func init() {
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "URL to extract the job posting from (required)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", ".", "Output directory")

	extractCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	// The extractor is heuristic only; no API tokens are needed here, so the
	// full config validation is skipped.
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx := context.Background()
	renderer := fetch.NewRenderer(cfg.UseBrowser, cfg.BrowserTimeout)

	html, err := renderer.Render(ctx, extractURL)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}

	posting, err := extract.Extract(html, extractURL)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(posting, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize posting: %w", err)
	}

	if err := schemas.ValidateJobPosting(data); err != nil {
		return err
	}

	outPath := filepath.Join(extractOut, "job_posting.json")
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully extracted job posting\n")
	fmt.Fprintf(os.Stdout, "Title: %s\n", posting.Title)
	fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)

	return nil
}
