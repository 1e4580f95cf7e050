package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ErikNoahB/temporal-benchmark-data-script/pkg/augment"
	"github.com/ErikNoahB/temporal-benchmark-data-script/pkg/lifecycle"
	"github.com/ErikNoahB/temporal-benchmark-data-script/pkg/scan"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

type options struct {
	directory string
	file      string
	output    string

	deletionYears   lifecycle.Range
	validStartYears lifecycle.Range
	validEndYears   lifecycle.Range

	seed    int64
	dryRun  bool
	jsonOut bool
	verbose bool

	logger *zap.Logger
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{
		deletionYears:   lifecycle.DefaultDeletionYears,
		validStartYears: lifecycle.DefaultValidStartYears,
		validEndYears:   lifecycle.DefaultValidEndYears,
	}

	rootCmd := &cobra.Command{
		Use:   "convert-dataset",
		Short: "Augment pipe-delimited CSV files with synthetic lifecycle dates",
		Long: "convert-dataset reads pipe-delimited CSV files, locates the creationDate " +
			"column and appends randomized deletionDate, validStart and validEnd " +
			"timestamps derived from each row's creation year. Files are processed " +
			"one by one and written to the output directory under their original names.",
		Version: version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.directory, "directory", "d", "", "directory containing CSV files to process")
	flags.StringVarP(&opts.file, "file", "f", "", "single CSV file to process")
	flags.StringVarP(&opts.output, "output", "o", "processed_csv", "output directory for processed files")
	flags.Var(rangeFlag{&opts.deletionYears}, "dyr", "deletion date year offset range from the creation year")
	flags.Var(rangeFlag{&opts.validStartYears}, "vsr", "valid start year offset range from the creation year")
	flags.Var(rangeFlag{&opts.validEndYears}, "ver", "valid end year offset range from the valid start year")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed, omit for a time-based seed")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "report what would be written without creating files")
	flags.BoolVar(&opts.jsonOut, "json", false, "emit per-file results as JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.MarkFlagsMutuallyExclusive("directory", "file")

	return rootCmd
}

// rangeFlag adapts lifecycle.Range to the pflag.Value interface.
type rangeFlag struct {
	r *lifecycle.Range
}

func (f rangeFlag) String() string {
	if f.r == nil {
		return ""
	}
	return f.r.String()
}

func (f rangeFlag) Set(s string) error {
	r, err := lifecycle.ParseRange(s)
	if err != nil {
		return err
	}
	*f.r = r
	return nil
}

func (f rangeFlag) Type() string {
	return "min,max"
}

func run(cmd *cobra.Command, opts *options) error {
	offsets := lifecycle.Offsets{
		DeletionYears:   opts.deletionYears,
		ValidStartYears: opts.validStartYears,
		ValidEndYears:   opts.validEndYears,
	}

	var processDir bool
	var path string
	switch {
	case opts.directory != "":
		processDir = true
		path = opts.directory
	case opts.file != "":
		path = opts.file
	default:
		var err error
		processDir, path, offsets, err = promptConfig(cmd, offsets)
		if err != nil {
			return err
		}
	}

	if !opts.dryRun {
		if err := os.MkdirAll(opts.output, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", opts.output, err)
		}
	}

	seed := time.Now().UnixNano()
	if cmd.Flags().Changed("seed") {
		seed = opts.seed
	}
	gen := lifecycle.NewGenerator(rand.New(rand.NewSource(seed)), offsets)

	augOpts := augment.DefaultOptions()
	augOpts.DryRun = opts.dryRun

	opts.logger.Debug("configuration resolved",
		zap.Bool("directory_mode", processDir),
		zap.String("path", path),
		zap.String("output", opts.output),
		zap.String("dyr", offsets.DeletionYears.String()),
		zap.String("vsr", offsets.ValidStartYears.String()),
		zap.String("ver", offsets.ValidEndYears.String()),
		zap.Int64("seed", seed),
		zap.Bool("dry_run", opts.dryRun),
	)

	if processDir {
		return runDirectory(cmd, opts, path, gen, augOpts)
	}
	return runFile(cmd, opts, path, gen, augOpts)
}

func runDirectory(cmd *cobra.Command, opts *options, dir string, gen *lifecycle.Generator, augOpts augment.Options) error {
	files, err := scan.Files(os.DirFS(dir), ".", scan.DefaultOptions())
	if err != nil {
		return fmt.Errorf("scan directory %s: %w", dir, err)
	}
	opts.logger.Debug("directory scanned", zap.String("directory", dir), zap.Int("files", len(files)))

	if len(files) == 0 && !opts.jsonOut {
		cmd.Printf("No CSV files found in directory: %s\n", dir)
		return nil
	}
	if !opts.jsonOut {
		cmd.Printf("Processing %d CSV files in '%s'...\n", len(files), dir)
	}

	results := make([]result, 0, len(files))
	for _, name := range files {
		results = append(results, processOne(opts, filepath.Join(dir, name), gen, augOpts))
	}
	return emitResults(cmd, opts, results)
}

func runFile(cmd *cobra.Command, opts *options, path string, gen *lifecycle.Generator, augOpts augment.Options) error {
	// Only a missing path is terminal here; anything that goes wrong while
	// processing an existing path is reported like a directory-mode failure.
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	return emitResults(cmd, opts, []result{processOne(opts, path, gen, augOpts)})
}

const (
	statusProcessed = "processed"
	statusPlanned   = "planned"
	statusSkipped   = "skipped"
	statusFailed    = "failed"
)

type result struct {
	augment.Report
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// processOne augments a single file and classifies the outcome. Per-file
// problems land in the result instead of aborting the remaining files.
func processOne(opts *options, path string, gen *lifecycle.Generator, augOpts augment.Options) result {
	report, err := augment.File(path, opts.output, gen, augOpts)
	if report.Input == "" {
		report.Input = path
	}

	res := result{Report: report, Status: statusProcessed}
	if opts.dryRun {
		res.Status = statusPlanned
	}
	switch {
	case errors.Is(err, augment.ErrColumnNotFound):
		res.Status = statusSkipped
		res.Error = err.Error()
	case err != nil:
		res.Status = statusFailed
		res.Error = err.Error()
	}

	opts.logger.Debug("file finished",
		zap.String("input", res.Input),
		zap.String("status", res.Status),
		zap.Int("rows", res.Rows),
		zap.Int("augmented", res.Augmented),
		zap.Int("passed_through", res.PassedThrough),
		zap.Int("dropped", res.Dropped),
	)
	return res
}

func emitResults(cmd *cobra.Command, opts *options, results []result) error {
	if opts.jsonOut {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, res := range results {
		switch res.Status {
		case statusSkipped:
			cmd.Printf("Skipping '%s' (%s)\n", res.Input, res.Error)
		case statusFailed:
			cmd.Printf("Error processing '%s': %s\n", res.Input, res.Error)
		case statusPlanned:
			cmd.Printf("Would process: %s -> %s (rows: %d, augmented: %d, passed through: %d, dropped: %d)\n",
				res.Input, res.Output, res.Rows, res.Augmented, res.PassedThrough, res.Dropped)
		default:
			cmd.Printf("Processed: %s -> %s (rows: %d, augmented: %d, passed through: %d, dropped: %d)\n",
				res.Input, res.Output, res.Rows, res.Augmented, res.PassedThrough, res.Dropped)
		}
	}
	return nil
}
