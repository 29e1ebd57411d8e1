package lang

import (
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/templet/log"
)

// Template is a parsed template: an immutable node tree built once and
// rendered any number of times. Renders against independent mappings and
// sinks may run concurrently.
type Template struct {
	source string
	nodes  []Node
	logger log.Logger
}

// Option configures a Template during parsing.
type Option func(*Template)

// WithLogger sets the logger used for trace-level parse and render
// diagnostics. The zero Logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(t *Template) { t.logger = logger }
}

// Source returns the original template text.
func (t *Template) Source() string { return t.source }

// Len returns the number of top-level nodes in the parsed tree.
func (t *Template) Len() int { return len(t.nodes) }

// Render evaluates the template against kv, writing the expansion to w.
// A propagated failure leaves any output already written in place; callers
// needing atomic output must buffer externally.
func (t *Template) Render(w io.Writer, kv Map) error {
	for _, node := range t.nodes {
		if err := node.Evaluate(w, kv); err != nil {
			t.logger.Error("render failed",
				slog.String("node", node.Type().String()),
				slog.Any("error", err))

			return err
		}
	}

	return nil
}

// RenderString evaluates the template against kv and returns the
// expansion as a string.
func (t *Template) RenderString(kv Map) (string, error) {
	var sb strings.Builder

	if err := t.Render(&sb, kv); err != nil {
		return "", err
	}

	return sb.String(), nil
}
