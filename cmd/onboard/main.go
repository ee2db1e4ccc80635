package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/solutionspm/onboard/internal/api"
	"github.com/solutionspm/onboard/internal/cli"
	"github.com/solutionspm/onboard/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	app := &cli.App{
		Client: api.New(cfg.API.BaseURL),
		Config: cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
