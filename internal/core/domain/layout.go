package domain

const (
	// DefaultCreateCommand is the project-setup command run before listing packages.
	DefaultCreateCommand = "make setup"

	// DefaultEnvironmentSelector selects the project-local environment.
	DefaultEnvironmentSelector = "-p ./env"

	// DefaultCondaExecutable is the binary used to list packages.
	DefaultCondaExecutable = "conda"

	// CogExecutable is the documentation generator wrapped by the cog hook.
	CogExecutable = "cog"

	// MakeExecutable prints the project's make targets when run without arguments.
	MakeExecutable = "make"

	// DependenciesKey introduces the top-level dependency list of an environment file.
	DependenciesKey = "dependencies:"

	// PipSublistKey introduces the nested pip dependency list.
	PipSublistKey = "- pip:"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
