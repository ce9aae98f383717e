package logging

import (
	"log/slog"
	"os"
)

// New builds the process logger: JSON on stdout, tagged with the component
// name so worker and driver lines are distinguishable.
func New(component string) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h).With("component", component)
}
