package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/templet/lang"
)

// Check parses a template without rendering it, reporting syntax errors.
type Check struct {
	Template string `arg:"" help:"Template file or '-' for stdin" name:"template"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	tpl, err := parseTemplate(ctx, c.Template)
	if err != nil {
		return lang.WrapError(err).
			With(slog.String("command", "check"),
				slog.String("template", c.Template))
	}

	ktx := kongContextFrom(ctx)
	if ktx != nil {
		fmt.Fprintf(ktx.Stdout, "%s: ok (%d nodes)\n", c.Template, tpl.Len())

		return nil
	}

	fmt.Printf("%s: ok (%d nodes)\n", c.Template, tpl.Len())

	return nil
}
