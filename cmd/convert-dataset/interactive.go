package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ErikNoahB/temporal-benchmark-data-script/pkg/lifecycle"
	"github.com/spf13/cobra"
)

// promptConfig walks the caller through mode, path and optional offset
// overrides when no path was given on the command line. Prompts go to the
// command's output and answers are read from its input.
func promptConfig(cmd *cobra.Command, defaults lifecycle.Offsets) (processDir bool, path string, offsets lifecycle.Offsets, err error) {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "1 - Process a directory")
	fmt.Fprintln(out, "2 - Process a single file")
	fmt.Fprint(out, "Enter your choice (1 or 2): ")

	switch readLine(in) {
	case "1":
		processDir = true
		fmt.Fprint(out, "Enter the directory path containing CSV files: ")
	case "2":
		fmt.Fprint(out, "Enter the CSV file path: ")
	default:
		return false, "", defaults, errors.New("invalid choice: expected 1 or 2")
	}

	path = readLine(in)
	if path == "" {
		return false, "", defaults, errors.New("no path provided")
	}

	offsets = defaults
	fmt.Fprintf(out, "Customize year offset ranges? Defaults: dyr=%s vsr=%s ver=%s (y/N): ",
		defaults.DeletionYears, defaults.ValidStartYears, defaults.ValidEndYears)
	if strings.EqualFold(readLine(in), "y") {
		offsets.DeletionYears = promptRange(out, in, "deletion date year offsets", defaults.DeletionYears)
		offsets.ValidStartYears = promptRange(out, in, "valid start year offsets", defaults.ValidStartYears)
		offsets.ValidEndYears = promptRange(out, in, "valid end year offsets", defaults.ValidEndYears)
	}

	return processDir, path, offsets, nil
}

// promptRange reads one min,max answer, falling back to def on blank or
// unusable input.
func promptRange(out io.Writer, in *bufio.Scanner, label string, def lifecycle.Range) lifecycle.Range {
	fmt.Fprintf(out, "Enter %s as min,max [%s]: ", label, def)

	answer := readLine(in)
	if answer == "" {
		return def
	}

	r, err := lifecycle.ParseRange(answer)
	if err != nil {
		fmt.Fprintf(out, "Invalid input, using default %s\n", def)
		return def
	}
	return r
}

func readLine(in *bufio.Scanner) string {
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
