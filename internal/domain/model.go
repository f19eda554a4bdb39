package domain

import (
	"fmt"
	"strings"
	"time"
)

// OutcomeStatus classifies the verdict of a single check.
type OutcomeStatus string

const (
	StatusExisting OutcomeStatus = "existing"
	StatusMissing  OutcomeStatus = "missing"
	// StatusIssue marks an entity that exists but violates a secondary
	// constraint (currently only the minimum file size).
	StatusIssue OutcomeStatus = "issue"
)

// CheckOutcome is the verdict for one directory or file requirement.
type CheckOutcome struct {
	Status OutcomeStatus `json:"status"`
	Path   string        `json:"path"`
	Detail string        `json:"detail,omitempty"`
}

func Existing(path string) CheckOutcome {
	return CheckOutcome{Status: StatusExisting, Path: path}
}

func Missing(path string) CheckOutcome {
	return CheckOutcome{Status: StatusMissing, Path: path}
}

// TestType selects which file rule set is active for a run.
type TestType string

const (
	TestTypeSB    TestType = "SB"
	TestTypeOther TestType = "OTHER"
)

// ParseTestType normalizes a raw test type string. Only the literal "sb"
// (case-insensitive) selects the extended rule set; every other value,
// including the empty string, selects the basic set.
func ParseTestType(s string) TestType {
	if strings.EqualFold(strings.TrimSpace(s), string(TestTypeSB)) {
		return TestTypeSB
	}
	return TestTypeOther
}

// ValidationResult aggregates all directory and file outcomes of one QC run.
// It is created fresh per invocation and handed to the reporting layer.
type ValidationResult struct {
	BasePath string   `json:"base_path"`
	TestType TestType `json:"test_type"`
	Prefix   string   `json:"prefix"`

	Directories []CheckOutcome `json:"directories"`
	Files       []CheckOutcome `json:"files"`

	ExistingDirs  []CheckOutcome `json:"existing_dirs"`
	MissingDirs   []CheckOutcome `json:"missing_dirs"`
	ExistingFiles []CheckOutcome `json:"existing_files"`
	MissingFiles  []CheckOutcome `json:"missing_files"`
	FileIssues    []CheckOutcome `json:"file_issues"`

	Passed bool `json:"passed"`
}

// Aggregate partitions directory and file outcomes into their status buckets,
// preserving the order produced by the evaluators. The run passes iff nothing
// is missing and no file issue was found.
func Aggregate(dirs, files []CheckOutcome) *ValidationResult {
	r := &ValidationResult{Directories: dirs, Files: files}

	for _, o := range dirs {
		if o.Status == StatusExisting {
			r.ExistingDirs = append(r.ExistingDirs, o)
		} else {
			r.MissingDirs = append(r.MissingDirs, o)
		}
	}

	for _, o := range files {
		switch o.Status {
		case StatusExisting:
			r.ExistingFiles = append(r.ExistingFiles, o)
		case StatusIssue:
			r.FileIssues = append(r.FileIssues, o)
		default:
			r.MissingFiles = append(r.MissingFiles, o)
		}
	}

	r.Passed = len(r.MissingDirs) == 0 && len(r.MissingFiles) == 0 && len(r.FileIssues) == 0
	return r
}

// FailureSummary composes the one-line failure cause, e.g.
// "2 missing directories, 1 missing files". Zero-valued categories are
// omitted. Returns the empty string for a passing result.
func (r *ValidationResult) FailureSummary() string {
	var parts []string
	if n := len(r.MissingDirs); n > 0 {
		parts = append(parts, fmt.Sprintf("%d missing directories", n))
	}
	if n := len(r.MissingFiles); n > 0 {
		parts = append(parts, fmt.Sprintf("%d missing files", n))
	}
	if n := len(r.FileIssues); n > 0 {
		parts = append(parts, fmt.Sprintf("%d file issues", n))
	}
	return strings.Join(parts, ", ")
}

// RunEntry is one recorded QC run in a directory's history.
type RunEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	BasePath     string    `json:"base_path"`
	TestType     TestType  `json:"test_type"`
	Prefix       string    `json:"prefix"`
	Passed       bool      `json:"passed"`
	MissingDirs  int       `json:"missing_dirs"`
	MissingFiles int       `json:"missing_files"`
	FileIssues   int       `json:"file_issues"`
	CommitHash   string    `json:"commit_hash,omitempty"`
}
