package main

import (
	"flag"
	"fmt"
	"os"

	"trackfitnessgoals/cmd/webui/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	baseURL := flag.String("server", "http://127.0.0.1:5000", "Backend base URL")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*baseURL), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
