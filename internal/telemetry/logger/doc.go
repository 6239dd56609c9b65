// Package logger provides structured logging for the platform service.
//
// This package configures log/slog for structured logging:
//
//   - logger.go: Handler configuration and level management
//   - context.go: Context-aware logging with request IDs
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Context propagation for request tracing
package logger
