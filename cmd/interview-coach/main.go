// Package main provides the entry point for the interview coach bot.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview-coach",
	Short: "Practice-interview Telegram bot",
	Long: "Interview Coach turns a job posting URL into a practice interview: it extracts the posting, " +
		"generates tailored questions, gives feedback on each answer (text or voice), and delivers a PDF performance report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
