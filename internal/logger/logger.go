package logger

import (
	"io"
	"log/slog"
)

// Init configures and sets the default slog logger to use JSON format,
// writing to w. The CLI passes os.Stderr so structured logs never interleave
// with menu text on stdout. Debug mode lowers the level to slog.LevelDebug.
func Init(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
