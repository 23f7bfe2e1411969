package domain

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// CogWorkingDir computes the directory cog runs in and the file argument relative to it.
//
// A level of 0 runs from cwd (the repository root), -1 from the file's parent
// directory, and N > 0 from the first N slash-separated elements of the file path.
func CogWorkingDir(file string, level int, cwd string) (dir, rel string, err error) {
	switch {
	case level < -1:
		return "", "", zerr.With(ErrInvalidWorkingDirectoryLevel, "level", level)
	case level == 0:
		return cwd, file, nil
	case level == -1:
		return filepath.Dir(file), filepath.Base(file), nil
	}

	slashed := filepath.ToSlash(file)
	elements := strings.Split(slashed, "/")
	if level >= len(elements) {
		level = len(elements) - 1
	}
	dir = path.Join(elements[:level]...)
	if strings.HasPrefix(slashed, "/") {
		dir = "/" + dir
	}
	dir = filepath.FromSlash(dir)
	rel = filepath.FromSlash(path.Join(elements[level:]...))
	if dir == "" {
		dir = cwd
	}
	return dir, rel, nil
}
