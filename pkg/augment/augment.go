// Package augment transcribes delimited CSV files, appending synthetic
// lifecycle timestamp columns derived from each row's creation timestamp.
package augment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ErikNoahB/temporal-benchmark-data-script/pkg/lifecycle"
)

// Appended column names, in output order.
const (
	DeletionColumn   = "deletionDate"
	ValidStartColumn = "validStart"
	ValidEndColumn   = "validEnd"
)

var (
	// ErrColumnNotFound is returned when the header lacks the creation column.
	ErrColumnNotFound = errors.New("creation column not found")
)

// Options configures the transcription.
type Options struct {
	// Delimiter separates fields on input and output.
	Delimiter rune

	// Column is the header name of the creation timestamp field.
	Column string

	// DryRun computes reports without creating output files.
	DryRun bool
}

// DefaultOptions returns the pipe-delimited creationDate configuration.
func DefaultOptions() Options {
	return Options{
		Delimiter: '|',
		Column:    "creationDate",
	}
}

// Report summarizes the transcription of one file.
type Report struct {
	Input         string `json:"input"`
	Output        string `json:"output"`
	Rows          int    `json:"rows"`
	Augmented     int    `json:"augmented"`
	PassedThrough int    `json:"passed_through"`
	Dropped       int    `json:"dropped"`
}

// Stream transcribes delimited rows from r to w, appending the three derived
// lifecycle timestamps to every row whose creation field contains a
// recognizable timestamp. Rows that do not match are copied unchanged; rows
// too short to carry the creation column are dropped. The header is always
// widened by the three new column names.
func Stream(r io.Reader, w io.Writer, gen *lifecycle.Generator, opts Options) (Report, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.FieldsPerRecord = -1
	// Stray quotes inside unquoted fields are data, not syntax errors.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return Report{}, fmt.Errorf("read header: %w", err)
	}

	column := columnIndex(header, opts.Column)
	if column < 0 {
		return Report{}, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.Column)
	}

	writer := csv.NewWriter(w)
	writer.Comma = opts.Delimiter

	if err := writer.Write(append(header, DeletionColumn, ValidStartColumn, ValidEndColumn)); err != nil {
		return Report{}, fmt.Errorf("write header: %w", err)
	}

	var report Report
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, fmt.Errorf("read row: %w", err)
		}
		report.Rows++

		// Rows without the creation column are dropped from the output.
		if len(row) <= column {
			report.Dropped++
			continue
		}

		if ts, ok := lifecycle.ParseTimestamp(row[column]); ok {
			dates := gen.Derive(ts)
			row = append(row, dates.Deletion, dates.ValidStart, dates.ValidEnd)
			report.Augmented++
		} else {
			report.PassedThrough++
		}

		if err := writer.Write(row); err != nil {
			return report, fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return report, fmt.Errorf("flush output: %w", err)
	}
	return report, nil
}

// OutputPath places the input's base name inside outputDir.
func OutputPath(inputPath, outputDir string) string {
	return filepath.Join(outputDir, filepath.Base(inputPath))
}

// File transcribes inputPath into outputDir under the same base name. The
// output file is only created once the header check has passed, so inputs
// skipped for a missing creation column leave nothing behind. With
// Options.DryRun the transcription runs but nothing is written.
func File(inputPath, outputDir string, gen *lifecycle.Generator, opts Options) (Report, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Report{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	outputPath := OutputPath(inputPath, outputDir)

	var out io.Writer
	var lazy *lazyFile
	if opts.DryRun {
		out = io.Discard
	} else {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return Report{}, fmt.Errorf("create output directory: %w", err)
		}
		lazy = &lazyFile{path: outputPath}
		defer lazy.Close()
		out = lazy
	}

	report, err := Stream(in, out, gen, opts)
	report.Input = inputPath
	report.Output = outputPath
	if err != nil {
		return report, err
	}

	if lazy != nil {
		if err := lazy.Close(); err != nil {
			return report, fmt.Errorf("close output: %w", err)
		}
	}
	return report, nil
}

func columnIndex(header []string, name string) int {
	for i, field := range header {
		if field == name {
			return i
		}
	}
	return -1
}

// lazyFile creates its file on first write, so callers that never produce
// output leave no file behind.
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil {
		f, err := os.Create(l.path)
		if err != nil {
			return 0, err
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	f := l.f
	l.f = nil
	return f.Close()
}
