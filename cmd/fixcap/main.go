package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fixcap/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fixcap",
	Short: "Fixed-capacity buffer inspection toolkit",
	Long:  `fixcap streams binary data through allocation-free fixed-capacity buffers and renders canonical hex dumps`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(hexdumpCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to fixcap.toml (default: discovered upward from the working directory)")
	rootCmd.PersistentFlags().Bool("verbose", false, "emit debug diagnostics")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
