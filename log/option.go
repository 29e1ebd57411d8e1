package log

import "io"

// Option applies a configuration option to a logger config.
type Option func(config) config

// apply applies multiple options to a config in order.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithDefaults returns a functional option that sets the default
// configuration: [DefaultLevel], [DefaultFormat], [DefaultTimeLayout],
// caller info disabled, and pretty printing disabled.
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		c.output = w
		c.timeLayout = DefaultTimeLayout
		c.level = DefaultLevel
		c.format = DefaultFormat
		c.caller = DefaultCaller
		c.pretty = DefaultPretty

		return c
	}
}

// WithLevel returns a functional option that sets the minimum log level.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat returns a functional option that sets the log output format.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout returns a functional option that sets the timestamp
// layout, by standard name (e.g. "RFC3339") or verbatim format string.
// An empty layout omits timestamps entirely.
func WithTimeLayout(layout string) Option {
	return func(c config) config {
		c.timeLayout = ParseTimeLayout(layout)

		return c
	}
}

// WithCaller returns a functional option that enables or disables caller
// information in log output.
func WithCaller(caller bool) Option {
	return func(c config) config {
		c.caller = caller

		return c
	}
}

// WithPretty returns a functional option that enables or disables
// colorized pretty printing.
func WithPretty(pretty bool) Option {
	return func(c config) config {
		c.pretty = pretty

		return c
	}
}

// WithWriter returns a functional option that sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(c config) config {
		c.output = w

		return c
	}
}
