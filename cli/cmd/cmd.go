package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/templet/lang"
	"github.com/ardnew/templet/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource is the special path indicating stdin input.
const stdinSource = "-"

// parseTemplate parses the template at path, or stdin when path is "-".
func parseTemplate(ctx context.Context, path string) (*lang.Template, error) {
	opts := []lang.Option{lang.WithLogger(log.Default())}

	if path == stdinSource {
		return lang.ParseReader(ctx, os.Stdin, opts...)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, lang.ErrReadInput.Wrap(err).
			With(slog.String("template", path))
	}
	defer file.Close()

	return lang.ParseReader(ctx, file, opts...)
}

// loadData decodes the YAML (or JSON) context file at path into a render
// mapping. An empty path yields an empty mapping.
func loadData(path string) (lang.Map, error) {
	if path == "" {
		return lang.Map{}, nil
	}

	var reader io.Reader

	if path == stdinSource {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, lang.ErrReadInput.Wrap(err).
				With(slog.String("data", path))
		}
		defer file.Close()

		reader = file
	}

	var raw map[string]any

	if err := yaml.NewDecoder(reader).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return lang.Map{}, nil
		}

		return nil, lang.ErrReadInput.Wrap(err).
			With(slog.String("data", path))
	}

	return lang.MappingFromAny(raw)
}
