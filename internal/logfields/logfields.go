package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyCommand    = "command"
	KeyScript     = "script"
	KeyManager    = "package_manager"
	KeyPath       = "path"
	KeyDir        = "dir"
	KeyExitCode   = "exit_code"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Command(c string) slog.Attr       { return slog.String(KeyCommand, c) }
func Script(s string) slog.Attr        { return slog.String(KeyScript, s) }
func Manager(m string) slog.Attr       { return slog.String(KeyManager, m) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Dir(d string) slog.Attr           { return slog.String(KeyDir, d) }
func ExitCode(c int) slog.Attr         { return slog.Int(KeyExitCode, c) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil { return slog.String(KeyError, "") }
	return slog.String(KeyError, err.Error())
}
