package fileinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParts(t *testing.T) {
	dir := t.TempDir()
	fi := New(filepath.Join(dir, "report.tar.gz"))

	assert.Equal(t, filepath.Join(dir, "report.tar.gz"), fi.AbsoluteFilePath())
	assert.Equal(t, dir, fi.AbsolutePath())
	assert.Equal(t, "report.tar.gz", fi.FileName())
	assert.Equal(t, "gz", fi.Suffix())
	assert.Equal(t, "report", fi.BaseName())
	assert.Equal(t, "report.tar", fi.CompleteBaseName())
}

func TestNoSuffix(t *testing.T) {
	fi := New(filepath.Join(t.TempDir(), "README"))

	assert.Equal(t, "", fi.Suffix())
	assert.Equal(t, "README", fi.BaseName())
}

func TestRelativePathIsMadeAbsolute(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	fi := New("out/report.pdf")
	assert.Equal(t, filepath.Join(wd, "out", "report.pdf"), fi.AbsoluteFilePath())
}

func TestEmpty(t *testing.T) {
	var fi Info
	assert.True(t, fi.IsEmpty())
	assert.Equal(t, "", fi.AbsolutePath())
	assert.Equal(t, "", fi.FileName())
	assert.Equal(t, "", fi.Suffix())
}

func TestSetters(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	changes := 0
	fi := New(filepath.Join(dir, "report.tar.gz"))
	fi.OnChange = func() { changes++ }

	fi.SetSuffix("bz2")
	assert.Equal(t, filepath.Join(dir, "report.tar.bz2"), fi.AbsoluteFilePath())

	fi.SetBaseName("summary")
	assert.Equal(t, filepath.Join(dir, "summary.tar.bz2"), fi.AbsoluteFilePath())

	fi.SetFileName("locations.pdf")
	assert.Equal(t, filepath.Join(dir, "locations.pdf"), fi.AbsoluteFilePath())

	fi.SetAbsolutePath(other)
	assert.Equal(t, filepath.Join(other, "locations.pdf"), fi.AbsoluteFilePath())

	fi.SetSuffix("")
	assert.Equal(t, filepath.Join(other, "locations"), fi.AbsoluteFilePath())

	fi.SetAbsoluteFilePath(filepath.Join(dir, "x.pdf"))
	assert.Equal(t, "x", fi.BaseName())

	assert.Equal(t, 6, changes)

	fi.SetFileName("x.pdf")
	assert.Equal(t, 6, changes, "unchanged path must not notify")
}
