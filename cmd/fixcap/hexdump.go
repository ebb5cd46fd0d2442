package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fixcap/internal/buffer"
	"fixcap/internal/logsink"
)

var hexdumpCmd = &cobra.Command{
	Use:   "hexdump [flags] file...",
	Short: "Print files as canonical hex dumps",
	Long:  `Hexdump streams each file through a fixed-capacity buffer and prints space-separated hex pairs, 16 bytes per line with an extra gap every 8`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHexdump,
}

func init() {
	hexdumpCmd.Flags().Int("chunk", 0, "buffer capacity in bytes (overrides config, rounded up to a multiple of 16)")
}

func runHexdump(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sink, err := resolveSink(cmd, cfg)
	if err != nil {
		return err
	}

	chunk, err := cmd.Flags().GetInt("chunk")
	if err != nil {
		return fmt.Errorf("failed to get chunk flag: %w", err)
	}
	if chunk <= 0 {
		chunk = cfg.Dump.ChunkSize
	}
	// Keep line grouping continuous across chunk boundaries.
	if rem := chunk % 16; rem != 0 {
		chunk += 16 - rem
	}

	outputs := make([]string, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			out, err := dumpFile(path, chunk, sink)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, dump := range outputs {
		if len(args) > 1 {
			fmt.Fprintf(out, "%s:\n", args[i])
		}
		fmt.Fprint(out, dump)
	}
	return nil
}

// dumpFile streams path through a fixed-capacity byte buffer, chunk bytes at
// a time, and renders the dump.
func dumpFile(path string, chunk int, sink logsink.Sink) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := buffer.New[byte](chunk).WithSink(sink)
	scratch := make([]byte, chunk)
	var sb strings.Builder
	for {
		// Full chunks keep the 16-byte line grouping aligned across reads.
		n, rerr := io.ReadFull(f, scratch)
		if n > 0 {
			buf.Clear()
			if v := buf.Append(scratch[:n]); v.HasError() {
				return "", v.Err()
			}
			sb.WriteString(logsink.FormatHex(buf.Elems()))
		}
		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			return "", rerr
		}
	}
	dump := sb.String()
	if dump != "" && !strings.HasSuffix(dump, "\n") {
		dump += "\n"
	}
	return dump, nil
}
