package domain_test

import (
	"path/filepath"

	"github.com/dirqc/dirqc/internal/domain"
)

// fakeProber is an in-memory FileProber. Keys are cleaned absolute-ish paths;
// values describe the entity. Glob matching mirrors filepath.Match over the
// base names of entries directly under the queried dir.
type fakeProber struct {
	entries map[string]domain.ProbeResult
}

func newFakeProber() *fakeProber {
	return &fakeProber{entries: map[string]domain.ProbeResult{}}
}

func (f *fakeProber) addDir(path string) *fakeProber {
	f.entries[filepath.Clean(path)] = domain.ProbeResult{Exists: true, IsDir: true}
	return f
}

func (f *fakeProber) addFile(path string, size int64) *fakeProber {
	f.entries[filepath.Clean(path)] = domain.ProbeResult{Exists: true, Size: size}
	return f
}

func (f *fakeProber) Stat(path string) domain.ProbeResult {
	return f.entries[filepath.Clean(path)]
}

func (f *fakeProber) GlobCount(dir, pattern string) int {
	dir = filepath.Clean(dir)
	count := 0
	for path, st := range f.entries {
		if st.IsDir || filepath.Dir(path) != dir {
			continue
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			count++
		}
	}
	return count
}

// conformingBase builds a prober with the full required tree under base.
func conformingBase(base string) *fakeProber {
	p := newFakeProber().addDir(base)
	for _, rel := range []string{"NVA", "NVA/NESSUS", "NVA/NMAP", "NVA/QUALYS", "REPORTS", "REQUESTINFO"} {
		p.addDir(filepath.Join(base, filepath.FromSlash(rel)))
	}
	return p
}

func paths(outcomes []domain.CheckOutcome) []string {
	out := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o.Path)
	}
	return out
}

func statuses(outcomes []domain.CheckOutcome) []string {
	out := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, string(o.Status))
	}
	return out
}
