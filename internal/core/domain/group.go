package domain

import (
	"path/filepath"
	"slices"
)

// DirectoryGroup is the set of environment files sharing a project directory.
type DirectoryGroup struct {
	Dir   string
	Files []string
}

// GroupByDirectory groups files by parent directory.
// Directories are sorted lexicographically; files keep the order they were supplied in.
func GroupByDirectory(files []string) []DirectoryGroup {
	byDir := make(map[string][]string)
	for _, f := range files {
		dir := filepath.Dir(f)
		byDir[dir] = append(byDir[dir], f)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)

	groups := make([]DirectoryGroup, 0, len(dirs))
	for _, dir := range dirs {
		groups = append(groups, DirectoryGroup{Dir: dir, Files: byDir[dir]})
	}
	return groups
}
