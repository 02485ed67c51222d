// Package logger builds the zap logger shared by the CLI and the HTTP API.
//
// Debug level uses zap's development config; every other level uses the
// production config with the requested minimum level.
//
// # Request correlation
//
// WithRayID copies the ray id that the rayid middleware stores in the Fiber
// context onto a child logger, so every line of one request carries the same id.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json, console, or auto (console when stderr is a terminal)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "auto"})
//	log.Info("Harvest started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
