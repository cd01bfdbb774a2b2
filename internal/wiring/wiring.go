// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/dispatch/internal/adapters/api"
	_ "go.trai.ch/dispatch/internal/adapters/archive"
	_ "go.trai.ch/dispatch/internal/adapters/config"
	_ "go.trai.ch/dispatch/internal/adapters/credentials"
	_ "go.trai.ch/dispatch/internal/adapters/history"
	_ "go.trai.ch/dispatch/internal/adapters/logger"
	_ "go.trai.ch/dispatch/internal/adapters/prompt"
	_ "go.trai.ch/dispatch/internal/adapters/report"
	_ "go.trai.ch/dispatch/internal/adapters/session"
	_ "go.trai.ch/dispatch/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/dispatch/internal/app"
	_ "go.trai.ch/dispatch/internal/engine/scheduler"
)
