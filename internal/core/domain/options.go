package domain

// LoadOptions controls how a snapshot is obtained for a project directory.
type LoadOptions struct {
	// CreateCommand sets up or updates the environment. It is split into words
	// with shell quoting rules.
	CreateCommand string

	// SkipCreate disables the setup step for callers managing the environment themselves.
	SkipCreate bool

	// EnvironmentSelector selects the environment to list, e.g. "-p ./env" or "-n name".
	EnvironmentSelector string

	// CondaExecutable is the conda-compatible binary used for listing.
	CondaExecutable string
}

// DefaultLoadOptions returns the options used when the caller overrides nothing.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		CreateCommand:       DefaultCreateCommand,
		EnvironmentSelector: DefaultEnvironmentSelector,
		CondaExecutable:     DefaultCondaExecutable,
	}
}

// RewriteResult summarizes the rewrite of one environment file.
type RewriteResult struct {
	Path string

	// Changed is true when the file content differs from what was on disk.
	Changed bool

	// Annotated counts the tracking comments emitted.
	Annotated int

	// Pinned counts the dependency lines rewritten to a resolved version.
	Pinned int
}
