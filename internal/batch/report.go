package batch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SkippedFile records one input file the batch gave up on.
type SkippedFile struct {
	Path   string
	Reason string
}

// Report summarizes one batch run.
type Report struct {
	// RunID uniquely identifies this run in logs and downstream audits.
	RunID string

	Found     int
	Processed int
	Skipped   []SkippedFile
	Elapsed   time.Duration
}

// NewReport creates a report with a fresh run identifier.
func NewReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// Skip records a skipped file.
func (r *Report) Skip(path string, err error) {
	r.Skipped = append(r.Skipped, SkippedFile{Path: path, Reason: err.Error()})
}

// Summary renders the end-of-run summary.
func (r *Report) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "run %s: processed %d/%d file(s) in %.2fs",
		r.RunID, r.Processed, r.Found, r.Elapsed.Seconds())

	for _, s := range r.Skipped {
		fmt.Fprintf(&b, "\n  skipped %s: %s", filepath.Base(s.Path), s.Reason)
	}

	return b.String()
}
