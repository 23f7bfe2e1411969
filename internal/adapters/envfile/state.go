package envfile

import (
	"strings"

	"go.trai.ch/pinhooks/internal/core/domain"
)

// state is the position of the scanner relative to the dependency list.
type state uint8

const (
	outsideList state = iota
	inList
	inSublist
)

// next returns the state after reading a stripped line.
func (s state) next(line string) state {
	switch {
	case line == domain.DependenciesKey:
		if s == outsideList {
			return inList
		}
		return s
	case s == outsideList:
		return outsideList
	case !strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "-"):
		return outsideList
	case s == inList && line == domain.PipSublistKey:
		return inSublist
	}
	return s
}

// namespace returns the package namespace of dependencies read in this state.
func (s state) namespace() domain.Namespace {
	if s == inSublist {
		return domain.PyPI
	}
	return domain.Conda
}

// isDependency reports whether a stripped line inside the list declares a package.
func isDependency(line string) bool {
	return strings.HasPrefix(line, "-") && !strings.HasSuffix(line, ":")
}
