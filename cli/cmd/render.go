package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/templet/lang"
	"github.com/ardnew/templet/log"
)

// Render parses a template, renders it against context data, and writes
// the expansion.
type Render struct {
	Template string `arg:"" help:"Template file or '-' for stdin" name:"template"`
	Data     string `help:"YAML or JSON context data file"        short:"d" type:"existingfile"`
	Output   string `help:"Output file (default stdout)"          short:"o" type:"path"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	tpl, err := parseTemplate(ctx, r.Template)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "render"),
				slog.String("template", r.Template))
	}

	kv, err := loadData(r.Data)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "render"),
				slog.String("data", r.Data))
	}

	out := os.Stdout
	if r.Output != "" {
		out, err = os.Create(r.Output)
		if err != nil {
			return lang.NewError("failed to create output").Wrap(err).
				With(slog.String("output", r.Output))
		}
		defer out.Close()
	}

	log.TraceContext(ctx, "render template",
		slog.String("template", r.Template),
		slog.Int("nodes", tpl.Len()),
		slog.Int("context_keys", len(kv)))

	if err := tpl.Render(out, kv); err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "render"),
				slog.String("template", r.Template))
	}

	return nil
}
