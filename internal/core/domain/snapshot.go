package domain

import "go.trai.ch/zerr"

// Snapshot is the resolved package set of one environment at one point in time,
// partitioned into the conda and pip namespaces.
type Snapshot struct {
	Conda map[string]Dependency
	PyPI  map[string]Dependency
}

// NewSnapshot partitions a package listing into namespaces.
//
// Entries on the pypi channel belong to PyPI, everything else to Conda. The
// combined size of both namespaces must equal the number of entries; otherwise
// ErrSnapshotMismatch is returned and no snapshot is produced.
func NewSnapshot(entries []Dependency) (*Snapshot, error) {
	s := &Snapshot{
		Conda: make(map[string]Dependency),
		PyPI:  make(map[string]Dependency),
	}

	for _, e := range entries {
		dep := Dependency{
			Name:    NormalizeName(e.Name),
			Channel: e.Channel,
			Version: e.Version,
		}
		if e.Channel == PyPIChannel {
			s.PyPI[dep.Name] = dep
			continue
		}
		dep.Channel = NormalizeChannel(dep.Channel)
		s.Conda[dep.Name] = dep
	}

	if len(s.Conda)+len(s.PyPI) != len(entries) {
		err := zerr.With(ErrSnapshotMismatch, "listed", len(entries))
		err = zerr.With(err, "conda", len(s.Conda))
		return nil, zerr.With(err, "pypi", len(s.PyPI))
	}

	return s, nil
}

// Lookup returns the dependency with the given normalized name in one namespace.
func (s *Snapshot) Lookup(ns Namespace, name string) (Dependency, bool) {
	if s == nil {
		return Dependency{}, false
	}
	var dep Dependency
	var ok bool
	if ns == PyPI {
		dep, ok = s.PyPI[name]
	} else {
		dep, ok = s.Conda[name]
	}
	return dep, ok
}

// Len returns the number of packages in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Conda) + len(s.PyPI)
}
