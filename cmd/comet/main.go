package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/comet-cli/comet/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/comet-cli/comet/internal/app"
	"github.com/comet-cli/comet/internal/config"
	"github.com/comet-cli/comet/internal/llm"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var dryRun bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "comet",
		Short: "TUI that turns staged changes into AI-generated conventional commits",
		RunE:  run,
	}

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate generation and git operations without side effects")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := app.New(cfg, llm.NewClient(), dryRun)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
