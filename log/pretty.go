package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts slog.HandlerOptions
	mu   *sync.Mutex
	w    io.Writer
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		writeAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}

	writeAttr(buf, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			writeAttr(buf, slog.String(
				slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs([]slog.Attr) slog.Handler {
	return &prettyTextHandler{opts: h.opts, mu: h.mu, w: h.w}
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	return &prettyTextHandler{opts: h.opts, mu: h.mu, w: h.w}
}

func writeAttr(buf *bytes.Buffer, a slog.Attr) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(a.Key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')
	writeValue(buf, a.Value)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(colorCyan + v.String() + colorReset)

	case slog.KindInt64:
		buf.WriteString(colorYellow + strconv.FormatInt(v.Int64(), 10) + colorReset)

	case slog.KindUint64:
		buf.WriteString(colorYellow + strconv.FormatUint(v.Uint64(), 10) + colorReset)

	case slog.KindFloat64:
		buf.WriteString(
			colorYellow + strconv.FormatFloat(v.Float64(), 'g', -1, 64) + colorReset,
		)

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(colorGreen + "true" + colorReset)
		} else {
			buf.WriteString(colorRed + "false" + colorReset)
		}

	case slog.KindDuration:
		buf.WriteString(colorBlue + v.Duration().String() + colorReset)

	case slog.KindTime:
		buf.WriteString(colorBlue + v.Time().String() + colorReset)

	case slog.KindAny:
		if level, ok := v.Any().(slog.Level); ok {
			switch {
			case level >= slog.LevelError:
				buf.WriteString(colorRed)
			case level >= slog.LevelWarn:
				buf.WriteString(colorYellow)
			case level >= slog.LevelInfo:
				buf.WriteString(colorGreen)
			default:
				buf.WriteString(colorBlue)
			}

			buf.WriteString(level.String() + colorReset)

			return
		}

		buf.WriteString(colorCyan + v.String() + colorReset)

	default:
		buf.WriteString(colorCyan + v.String() + colorReset)
	}
}

// prettyJSONHandler implements a pretty-printed JSON-like handler for log
// messages. Values are colorized and unquoted, one field per line.
type prettyJSONHandler struct {
	opts slog.HandlerOptions
	mu   *sync.Mutex
	w    io.Writer
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)
	first := true

	buf.WriteString("{\n")

	if !r.Time.IsZero() {
		writeJSONField(buf, slog.TimeKey,
			slog.StringValue(r.Time.Format("2006-01-02T15:04:05Z07:00")), &first)
	}

	writeJSONField(buf, slog.LevelKey,
		slog.StringValue(r.Level.String()), &first)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			writeJSONField(buf, slog.SourceKey,
				slog.StringValue(fmt.Sprintf("%s:%d", src.File, src.Line)), &first)
		}
	}

	writeJSONField(buf, slog.MessageKey, slog.StringValue(r.Message), &first)

	r.Attrs(func(a slog.Attr) bool {
		writeJSONField(buf, a.Key, a.Value, &first)

		return true
	})

	buf.WriteString("\n}\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyJSONHandler) WithAttrs([]slog.Attr) slog.Handler {
	return &prettyJSONHandler{opts: h.opts, mu: h.mu, w: h.w}
}

func (h *prettyJSONHandler) WithGroup(string) slog.Handler {
	return &prettyJSONHandler{opts: h.opts, mu: h.mu, w: h.w}
}

func writeJSONField(
	buf *bytes.Buffer,
	key string,
	value slog.Value,
	first *bool,
) {
	if !*first {
		buf.WriteString(",\n")
	}

	*first = false

	buf.WriteString("  ")
	buf.WriteString(colorGray)
	buf.WriteString(key)
	buf.WriteString(colorReset)
	buf.WriteString(": ")
	writeValue(buf, value)
}
