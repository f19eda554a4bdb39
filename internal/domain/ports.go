package domain

// ProbeResult describes one filesystem entity, or its absence.
type ProbeResult struct {
	Exists bool
	IsDir  bool
	Size   int64
}

// FileProber answers existence, type and size questions about paths.
// Implementations never return errors: probe failures (permissions, transient
// I/O) are reported as absence, so a single unreadable path fails only its
// own check instead of aborting the run.
type FileProber interface {
	Stat(path string) ProbeResult
	// GlobCount returns the number of regular files in dir matching pattern.
	// A missing or unreadable dir counts as zero matches.
	GlobCount(dir, pattern string) int
}

// RunHistory persists QC run entries per base directory.
type RunHistory interface {
	Save(basePath string, entry RunEntry) error
	Load(basePath string) ([]RunEntry, error)
}

// GitInfo reports version-control metadata for a validated directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// ConfigLoader loads tool options from a directory.
type ConfigLoader interface {
	Load(dir string) (ToolConfig, error)
}
