package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fixcap/internal/buffer"
	"fixcap/internal/logsink"
	"fixcap/internal/ui"
)

// viewMaxBytes bounds the buffer backing the viewer.
const viewMaxBytes = 1 << 20

var viewCmd = &cobra.Command{
	Use:   "view file",
	Short: "Page through a file's hex dump interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func runView(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) > viewMaxBytes {
		return fmt.Errorf("%s: %d bytes exceeds the %d byte viewer limit", path, len(data), viewMaxBytes)
	}

	buf, rerr := buffer.NewFrom[byte](len(data), data).Get()
	if rerr != nil {
		return rerr
	}

	model := ui.NewHexView(path, logsink.FormatHex(buf.Elems()))
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
