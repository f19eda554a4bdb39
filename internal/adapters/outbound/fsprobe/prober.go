package fsprobe

import (
	"os"
	"path/filepath"

	"github.com/dirqc/dirqc/internal/domain"
)

// Prober implements domain.FileProber with blocking os calls. Probe failures
// of any kind (permissions, transient I/O) are reported as absence, so one
// unreadable path fails only its own check.
type Prober struct{}

func New() *Prober {
	return &Prober{}
}

func (*Prober) Stat(path string) domain.ProbeResult {
	info, err := os.Stat(path)
	if err != nil {
		return domain.ProbeResult{}
	}
	return domain.ProbeResult{
		Exists: true,
		IsDir:  info.IsDir(),
		Size:   info.Size(),
	}
}

// GlobCount counts regular files in dir matching pattern. Directories that
// happen to match are not counted.
func (*Prober) GlobCount(dir, pattern string) int {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return 0
	}

	count := 0
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			count++
		}
	}
	return count
}
