package fsprobe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dirqc/dirqc/internal/adapters/outbound/fsprobe"
	"github.com/dirqc/dirqc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
}

func TestProber_StatMissing(t *testing.T) {
	p := fsprobe.New()

	st := p.Stat(filepath.Join(t.TempDir(), "nope"))

	assert.False(t, st.Exists)
}

func TestProber_StatDirectory(t *testing.T) {
	dir := t.TempDir()
	p := fsprobe.New()

	st := p.Stat(dir)

	assert.True(t, st.Exists)
	assert.True(t, st.IsDir)
}

func TestProber_StatFileReportsSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "report.xlsx"), 26000)
	p := fsprobe.New()

	st := p.Stat(filepath.Join(dir, "report.xlsx"))

	assert.True(t, st.Exists)
	assert.False(t, st.IsDir)
	assert.Equal(t, int64(26000), st.Size)
}

func TestProber_GlobCount(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "scan1.nessus"), 1)
	writeFile(t, filepath.Join(dir, "scan2.nessus"), 1)
	writeFile(t, filepath.Join(dir, "notes.txt"), 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.nessus"), 0755))
	p := fsprobe.New()

	assert.Equal(t, 2, p.GlobCount(dir, "*.nessus"))
	assert.Equal(t, 0, p.GlobCount(dir, "*.xml"))
}

func TestProber_GlobCountMissingDir(t *testing.T) {
	p := fsprobe.New()

	assert.Equal(t, 0, p.GlobCount(filepath.Join(t.TempDir(), "absent"), "*.nessus"))
}

func TestProber_UnreadableParentTreatedAsAbsent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0755))
	writeFile(t, filepath.Join(locked, "scan.nessus"), 1)
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	p := fsprobe.New()

	// The file exists but cannot be reached: its own check fails closed.
	st := p.Stat(filepath.Join(locked, "scan.nessus"))
	assert.Equal(t, domain.ProbeResult{}, st)

	assert.Equal(t, 0, p.GlobCount(locked, "*.nessus"))

	// Sibling paths remain probeable.
	writeFile(t, filepath.Join(dir, "open.nessus"), 1)
	assert.True(t, p.Stat(filepath.Join(dir, "open.nessus")).Exists)
}
