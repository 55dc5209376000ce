// Package logging provides structured logging for sepgen.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the tool. Logging is silent by default so the
// wizard's terminal UI stays clean; set SEPGEN_LOG_LEVEL to enable output,
// which goes to stderr.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (visibility recomputes, emission decisions)
//   - Info: Normal operations (files generated, requests served)
//   - Warn: Non-fatal issues (missing preferences, retry paths)
//   - Error: Fatal issues (startup failures, write errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Config generated",
//	    zap.String("mac", "AABBCC112233"),
//	    zap.String("file", "SEPAABBCC112233.cnf.xml"),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
