package domain

// MakeTarget is one line of the project's make help output.
type MakeTarget struct {
	Name        string
	Description string
}
