package main

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/crumbs/server/internal/config"
	"codeberg.org/crumbs/server/internal/content"
	"codeberg.org/crumbs/server/internal/logger"
	"codeberg.org/crumbs/server/internal/theme"
	"codeberg.org/crumbs/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	flags := config.ParseTUIFlags(os.Args[1:])

	// the alt screen owns the terminal, so logs go to a file when asked for
	logOutput := io.Discard
	if path := os.Getenv("CRUMBS_LOG_FILE"); path != "" {
		f, err := tea.LogToFile(path, "crumbs")
		if err != nil {
			fmt.Printf("failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close() //nolint:errcheck

		logOutput = f
	}

	logger.Setup(flags.Env, logOutput)

	site, err := content.Load()
	if err != nil {
		fmt.Printf("failed to load content: %v\n", err)
		os.Exit(1)
	}

	store, err := theme.OpenLocalStore("crumbs")
	if err != nil {
		logger.ErrorErr(err, "theme preference will not be persisted")
	}

	app := tui.NewApp(flags.Env, flags.Endpoint, site, store)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running crumbs: %v\n", err)
		os.Exit(1)
	}
}
