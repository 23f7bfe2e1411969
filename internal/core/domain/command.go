package domain

import "io"

// Command is a subprocess invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Args holds the executable followed by its arguments.
	Args []string

	// Stdout and Stderr, when set, receive the output as it is produced
	// in addition to it being captured.
	Stdout io.Writer
	Stderr io.Writer
}

// CommandResult is the captured outcome of a finished subprocess.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
