package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/heatmap/internal/cli"
	"github.com/alexanderramin/heatmap/internal/config"
	"github.com/alexanderramin/heatmap/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	// Plain glyphs when piped or when colour is disabled.
	isTerminal := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if cfg.NoColor || !isTerminal {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Heatmap: service.NewHeatmapService(observer),
		Config:  cfg,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
