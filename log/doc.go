// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] wraps [slog.Logger] with a trace level below debug, attribute
// variadics instead of alternating key-value pairs, and a usable zero value
// that discards all output. Configuration is applied at creation time using
// functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText))
//	logger.Trace("parse start", slog.Int("source_length", n))
//
// The package also maintains a default process-wide logger configured with
// [Config] and reached through the package-level functions [Trace], [Debug],
// [Info], [Warn], and [Error] (and their Context variants).
package log
