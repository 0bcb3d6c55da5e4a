// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nupin/internal/adapters/config"
	_ "go.trai.ch/nupin/internal/adapters/logger"
	_ "go.trai.ch/nupin/internal/adapters/nupkg"
	_ "go.trai.ch/nupin/internal/adapters/nuspec"
	_ "go.trai.ch/nupin/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/nupin/internal/app"
	_ "go.trai.ch/nupin/internal/engine/pinner"
)
