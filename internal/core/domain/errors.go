package domain

import "go.trai.ch/zerr"

var (
	// ErrSnapshotMismatch is returned when the partitioned package counts do not add up to the listing.
	// It means the listing contained an entry the partition rules do not understand (e.g. a duplicate name).
	ErrSnapshotMismatch = zerr.New("mismatch parsing dependencies")

	// ErrSetupCommandFailed is returned when the environment setup command exits non-zero.
	ErrSetupCommandFailed = zerr.New("failed to run environment setup command")

	// ErrListCommandFailed is returned when listing the packages of an environment fails.
	ErrListCommandFailed = zerr.New("failed to list packages in conda environment")

	// ErrListParseFailed is returned when the package listing is not valid JSON.
	ErrListParseFailed = zerr.New("failed to parse conda package listing")

	// ErrInvalidCommand is returned when a command string cannot be split into words.
	ErrInvalidCommand = zerr.New("invalid command")

	// ErrEmptyCommand is returned when a command has no words to execute.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrCommandFailed is returned when a subprocess exits non-zero or cannot be started.
	ErrCommandFailed = zerr.New("command failed")

	// ErrLineParseFailed is returned when a dependency line does not match the expected grammar.
	ErrLineParseFailed = zerr.New("could not parse dependency line")

	// ErrEnvFileReadFailed is returned when an environment file cannot be read.
	ErrEnvFileReadFailed = zerr.New("failed to read environment file")

	// ErrEnvFileWriteFailed is returned when an environment file cannot be written.
	ErrEnvFileWriteFailed = zerr.New("failed to write environment file")

	// ErrEnvFileChanged is returned when an environment file changes on disk while it is being rewritten.
	ErrEnvFileChanged = zerr.New("environment file changed while rewriting")

	// ErrRewriteCorrupt is returned when the rewritten file no longer has the structure of the original.
	ErrRewriteCorrupt = zerr.New("rewritten environment file is not structurally equivalent to the original")

	// ErrAnnotateFailed is returned when annotating a group of environment files fails.
	ErrAnnotateFailed = zerr.New("failed to annotate environment files")

	// ErrCogFailed is returned when cog exits non-zero for a file.
	ErrCogFailed = zerr.New("cog failed")

	// ErrInvalidWorkingDirectoryLevel is returned when a working directory level is below -1.
	ErrInvalidWorkingDirectoryLevel = zerr.New("working directory level must be -1 or greater")

	// ErrMakeHelpFailed is returned when the make help output cannot be obtained.
	ErrMakeHelpFailed = zerr.New("failed to read make targets")

	// ErrCommandOutputFailed is returned when the output of a documented command cannot be captured.
	ErrCommandOutputFailed = zerr.New("failed to capture command output")

	// ErrNoMakeTargets is returned when make printed no targets to tabulate.
	ErrNoMakeTargets = zerr.New("no make targets found")
)
