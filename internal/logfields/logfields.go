package logfields

import "log/slog"

// Canonical log field names shared across packages.
const (
	KeyDocument   = "document"
	KeyBuildID    = "build_id"
	KeyStatus     = "status"
	KeyPath       = "path"
	KeyScenarios  = "scenarios"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func Document(name string) slog.Attr { return slog.String(KeyDocument, name) }
func BuildID(id string) slog.Attr    { return slog.String(KeyBuildID, id) }
func Status(s string) slog.Attr      { return slog.String(KeyStatus, s) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func Scenarios(n int) slog.Attr      { return slog.Int(KeyScenarios, n) }
func DurationMS(ms int64) slog.Attr  { return slog.Int64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
