package tui

import (
	"fmt"
	"os"
	"os/exec"

	"codeberg.org/crumbs/server/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// builds the server binary if needed and runs it in the background
func startServer() tea.Msg {
	serverPath := "bin/server"

	if _, err := os.Stat(serverPath); os.IsNotExist(err) {
		buildCmd := exec.Command("go", "build", "-o", serverPath, "./cmd/server")
		if err := buildCmd.Run(); err != nil {
			return ErrorMsg{err: fmt.Errorf("failed to build server: %w", err)}
		}
	}

	// output would corrupt the alt screen; the server logs through its own handler
	cmd := exec.Command(serverPath)

	go func() {
		if err := cmd.Run(); err != nil {
			logger.ErrorErr(err, "server error")
		}
	}()

	return ServerStartedMsg{}
}
