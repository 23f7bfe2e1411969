// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinhooks/internal/adapters/conda"
	_ "go.trai.ch/pinhooks/internal/adapters/envfile"
	_ "go.trai.ch/pinhooks/internal/adapters/logger"
	_ "go.trai.ch/pinhooks/internal/adapters/shell"
	_ "go.trai.ch/pinhooks/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/pinhooks/internal/app"
)
