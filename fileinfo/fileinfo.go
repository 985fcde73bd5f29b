// Package fileinfo provides Info, a file path value that exposes its parts
// (directory, file name, base name, suffix) and lets callers rewrite one part
// at a time.
//
// Naming follows the usual desktop convention:
//
//	/home/me/report.tar.gz
//	AbsolutePath: /home/me
//	FileName:     report.tar.gz
//	BaseName:     report      (before the first dot)
//	Suffix:       gz          (after the last dot)
package fileinfo

import (
	"path/filepath"
	"strings"
)

// Info holds an absolute file path. The zero value is an empty path.
type Info struct {
	path string

	// OnChange, when set, is called after every setter that changes the path.
	OnChange func()
}

// New returns an Info for path, made absolute against the working directory.
func New(path string) *Info {
	fi := &Info{}
	fi.path = absolute(path)
	return fi
}

func absolute(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// IsEmpty reports whether no path is set.
func (fi *Info) IsEmpty() bool { return fi.path == "" }

// AbsoluteFilePath returns the full path, including the file name.
func (fi *Info) AbsoluteFilePath() string { return fi.path }

// AbsolutePath returns the directory holding the file.
func (fi *Info) AbsolutePath() string {
	if fi.path == "" {
		return ""
	}
	return filepath.Dir(fi.path)
}

// FileName returns the last element of the path.
func (fi *Info) FileName() string {
	if fi.path == "" {
		return ""
	}
	return filepath.Base(fi.path)
}

// Suffix returns the text after the last dot of the file name, or "".
func (fi *Info) Suffix() string {
	name := fi.FileName()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// BaseName returns the file name up to its first dot.
func (fi *Info) BaseName() string {
	name := fi.FileName()
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// CompleteBaseName returns the file name up to its last dot.
func (fi *Info) CompleteBaseName() string {
	name := fi.FileName()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// completeSuffix is everything after the first dot.
func (fi *Info) completeSuffix() string {
	name := fi.FileName()
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// SetAbsoluteFilePath replaces the whole path.
func (fi *Info) SetAbsoluteFilePath(path string) {
	fi.set(absolute(path))
}

// SetAbsolutePath moves the file to dir, keeping its file name.
func (fi *Info) SetAbsolutePath(dir string) {
	fi.set(absolute(filepath.Join(dir, fi.FileName())))
}

// SetFileName renames the file within its directory.
func (fi *Info) SetFileName(name string) {
	fi.set(fi.join(name))
}

// SetSuffix replaces the text after the last dot. An empty suffix removes
// the dot as well.
func (fi *Info) SetSuffix(suffix string) {
	name := fi.CompleteBaseName()
	if suffix != "" {
		name += "." + suffix
	}
	fi.set(fi.join(name))
}

// SetBaseName replaces the text before the first dot.
func (fi *Info) SetBaseName(base string) {
	name := base
	if s := fi.completeSuffix(); s != "" {
		name += "." + s
	}
	fi.set(fi.join(name))
}

func (fi *Info) join(name string) string {
	dir := fi.AbsolutePath()
	if dir == "" {
		return absolute(name)
	}
	return filepath.Join(dir, name)
}

func (fi *Info) set(path string) {
	if path == fi.path {
		return
	}
	fi.path = path
	if fi.OnChange != nil {
		fi.OnChange()
	}
}

// String returns the absolute file path.
func (fi *Info) String() string { return fi.path }
