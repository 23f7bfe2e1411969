package domain

import "strings"

// Namespace identifies the package ecosystem a dependency belongs to.
type Namespace uint8

const (
	// Conda is the namespace of packages installed from conda channels.
	Conda Namespace = iota
	// PyPI is the namespace of packages installed by pip.
	PyPI
)

const (
	// PyPIChannel is the channel conda reports for packages installed by pip.
	PyPIChannel = "pypi"

	// DefaultChannel is the label used for the default conda channel.
	DefaultChannel = "main"

	// defaultChannelSuffix matches both pkgs/main and repo/main.
	defaultChannelSuffix = "/" + DefaultChannel
)

// Datasource returns the renovate datasource keyword for the namespace.
func (n Namespace) Datasource() string {
	if n == PyPI {
		return "pypi"
	}
	return "conda"
}

// String implements fmt.Stringer.
func (n Namespace) String() string {
	return n.Datasource()
}

// Dependency is a package resolved in a live environment.
type Dependency struct {
	// Name is the normalized package name (lowercase, hyphenated).
	Name string

	// Channel is the origin of the package. For conda packages it is normalized
	// with NormalizeChannel.
	Channel string

	// Version is the resolved version string.
	Version string
}

// NormalizeName lowercases a package name and replaces underscores with hyphens.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// NormalizeChannel folds any channel ending in /main into the default label.
// All other values are returned unchanged.
func NormalizeChannel(channel string) string {
	if strings.HasSuffix(channel, defaultChannelSuffix) {
		return DefaultChannel
	}
	return channel
}
