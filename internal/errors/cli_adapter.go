package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
)

// ExitCoder is implemented by errors that carry a delegate's exit code.
// Delegate exit codes pass through the adapter verbatim.
type ExitCoder interface {
	ExitCode() int
}

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
// Errors from delegated commands keep the child's exit code unchanged.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var ec ExitCoder
	if stderrors.As(err, &ec) {
		return ec.ExitCode()
	}

	if de, ok := err.(*DeckError); ok {
		return a.exitCodeFromDeckError(de)
	}

	return 1
}

// exitCodeFromDeckError maps DeckError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromDeckError(err *DeckError) int {
	switch err.Category {
	case CategoryValidation:
		return 2 // Invalid usage or failed checks
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryToolchain, CategoryInstall, CategoryExport:
		return 8 // External tool error (before the delegate produced a code)
	case CategoryFileSystem:
		return 11 // Local filesystem error
	case CategoryRuntime:
		return 12 // Runtime error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var ec ExitCoder
	if stderrors.As(err, &ec) {
		// Delegate already wrote its own diagnostics to stderr.
		return err.Error()
	}

	if de, ok := err.(*DeckError); ok {
		return a.formatDeckError(de)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatDeckError formats a DeckError for display.
func (a *CLIErrorAdapter) formatDeckError(err *DeckError) string {
	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		return err.Message
	default:
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", message)
	os.Exit(exitCode)
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	var ec ExitCoder
	if stderrors.As(err, &ec) {
		// The delegate's own output is the diagnostic; avoid double reporting.
		return false
	}

	if de, ok := err.(*DeckError); ok {
		return de.Category == CategoryInternal ||
			de.Category == CategoryRuntime ||
			de.Severity == SeverityFatal
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if de, ok := err.(*DeckError); ok {
		level := a.slogLevelFromSeverity(de.Severity)
		attrs := []slog.Attr{
			slog.String("category", string(de.Category)),
		}
		a.logger.LogAttrs(nil, level, de.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// slogLevelFromSeverity converts DeckError severity to slog level.
func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityFatal:
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
