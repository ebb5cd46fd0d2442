package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fixcap/internal/buffer"
	"fixcap/internal/logsink"
	"fixcap/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save and inspect buffer snapshots",
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save input output",
	Short: "Capture a file's bytes as a buffer snapshot",
	Args:  cobra.ExactArgs(2),
	RunE:  runSnapshotSave,
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show file",
	Short: "Print a snapshot's metadata and hex dump",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotShow,
}

func init() {
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
}

func runSnapshotSave(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	buf, rerr := buffer.NewFrom[byte](len(data), data).Get()
	if rerr != nil {
		return rerr
	}
	if err := snapshot.Save(output, buf); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes, capacity %d)\n", output, buf.Size(), buf.Capacity())
	return nil
}

func runSnapshotShow(cmd *cobra.Command, args []string) error {
	info, err := snapshot.Read(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "capacity:     %d\n", info.Capacity)
	fmt.Fprintf(out, "element size: %d\n", info.ElemSize)
	fmt.Fprintf(out, "length:       %d\n", info.Length)
	if len(info.Bytes) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, logsink.FormatHex(info.Bytes))
	}
	return nil
}
