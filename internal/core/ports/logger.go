package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs progress the user should see.
	Info(msg string)
	// Warn logs a recoverable problem or diagnostic output of a failed command.
	Warn(msg string)
	// Error logs an error together with its cause chain.
	Error(err error)
}
