// Package batch provides the one-shot batch runner: directory scanning,
// per-file processing through the record pipeline, ZIP packaging, optional
// housekeeping, and the end-of-run report.
//
// Files are processed strictly one at a time. A file that cannot be read
// or parsed is skipped and reported; the batch continues with the rest.
package batch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"csv-rewriter/internal/config"
	"csv-rewriter/internal/csvio"
	"csv-rewriter/internal/pipeline"
	"csv-rewriter/internal/transform"
)

// Runner executes one batch run over an input directory.
type Runner struct {
	Config    *config.Config
	Registry  *transform.Registry
	InputDir  string
	OutputDir string
	Logger    *log.Logger
}

// Run scans the input directory for *.csv files and processes each one
// independently. Configuration errors abort before any file is touched;
// file-level errors skip the offending file.
func (r *Runner) Run() (*Report, error) {
	started := time.Now()

	// Fail fast: no file is processed with a broken configuration.
	diags := pipeline.CheckOnly(r.Config, r.Registry)
	for _, w := range diags.Warnings {
		r.logf("config warning: %s", w)
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	plan, err := pipeline.NewPlan(r.Config, r.Registry)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := r.ensureDirs(); err != nil {
		return nil, err
	}

	if r.Config.PulisciOutput {
		if err := r.cleanOutput(); err != nil {
			return nil, err
		}
	}

	files, err := filepath.Glob(filepath.Join(r.InputDir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory %s: %w", r.InputDir, err)
	}

	sort.Strings(files)

	report := NewReport()
	report.Found = len(files)

	for _, path := range files {
		r.logf("processing %s", filepath.Base(path))

		archive, err := r.processFile(plan, path)
		if err != nil {
			r.logf("skipping %s: %v", filepath.Base(path), err)
			report.Skip(path, err)

			continue
		}

		r.logf("created %s", archive)
		report.Processed++

		if r.Config.PulisciInput {
			if err := os.Remove(path); err != nil {
				r.logf("failed to remove input %s: %v", path, err)
			}
		}
	}

	report.Elapsed = time.Since(started)

	return report, nil
}

// processFile reads, transforms, and packages a single file, returning the
// archive name it produced.
func (r *Runner) processFile(plan *pipeline.Plan, path string) (string, error) {
	delim, err := r.Config.DelimiterRune()
	if err != nil {
		return "", err
	}

	_, records, err := csvio.ReadFile(path, delim)
	if err != nil {
		return "", err
	}

	// Fresh pipeline per file: the sequence counter restarts at 1.
	pl := pipeline.FromPlan(plan)
	rows := pl.Run(records)

	content, err := csvio.RenderCSV(pl.Header(), rows)
	if err != nil {
		return "", err
	}

	archive, inner := csvio.OutputNames(path, r.Config.ZipName)
	if err := csvio.WriteZip(filepath.Join(r.OutputDir, archive), inner, content); err != nil {
		return "", err
	}

	return archive, nil
}

// ensureDirs creates the input and output directories if they don't exist.
func (r *Runner) ensureDirs() error {
	for _, dir := range []string{r.InputDir, r.OutputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// cleanOutput removes previous run artifacts from the output directory.
func (r *Runner) cleanOutput() error {
	entries, err := os.ReadDir(r.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to read output directory %s: %w", r.OutputDir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if err := os.Remove(filepath.Join(r.OutputDir, e.Name())); err != nil {
			return fmt.Errorf("failed to clean output file %s: %w", e.Name(), err)
		}
	}

	return nil
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
