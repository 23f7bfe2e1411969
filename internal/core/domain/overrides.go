package domain

// Overrides are caller-supplied values consulted before the snapshot.
type Overrides struct {
	// Channels maps a conda package name to the channel label used in its tracking comment.
	Channels map[string]string

	// Registries maps a pip package name to the index URL used in its tracking comment.
	Registries map[string]string
}

// RegistryOverrides routes every listed package to the given index URL.
// It returns an empty map unless both the URL and the package list are set.
func RegistryOverrides(indexURL string, packages []string) map[string]string {
	overrides := make(map[string]string)
	if indexURL == "" || len(packages) == 0 {
		return overrides
	}
	for _, pkg := range packages {
		overrides[pkg] = indexURL
	}
	return overrides
}

// Channel returns the channel override for a package, if any.
func (o Overrides) Channel(name string) (string, bool) {
	ch, ok := o.Channels[name]
	return ch, ok
}

// Registry returns the registry override for a package, if any.
func (o Overrides) Registry(name string) (string, bool) {
	url, ok := o.Registries[name]
	return url, ok
}
