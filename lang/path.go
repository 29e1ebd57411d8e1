package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// isValidName reports whether name matches the plain-name grammar
// [A-Za-z0-9_-]+ used for loop aliases and individual path segments.
func isValidName(name string) bool {
	if name == "" {
		return false
	}

	for _, c := range []byte(name) {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}

	return true
}

// isValidNameExpression reports whether name matches the combined path
// grammar used by substitution, condition, and loop-source tags: plain-name
// characters plus '[', ']', and '.', with no occurrence of "..".
func isValidNameExpression(name string) bool {
	if name == "" || strings.Contains(name, "..") {
		return false
	}

	for _, c := range []byte(name) {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		case c == '[' || c == ']' || c == '.':
		default:
			return false
		}
	}

	return true
}

// segment is one parsed element of a dotted path: a name with an optional
// 0-based array index (index < 0 when absent).
type segment struct {
	name  string
	index int
}

// parseIndex parses a bracketed array index like "[5]" into 5.
// The integer may be surrounded by whitespace inside the brackets.
func parseIndex(in string) (int, error) {
	if !strings.HasPrefix(in, "[") || !strings.HasSuffix(in, "]") {
		return 0, ErrInvalidTag.
			With(slog.String("reason", "array index must be enclosed with []"),
				slog.String("input", in))
	}

	raw := strings.TrimSpace(in[1 : len(in)-1])

	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidTag.
			With(slog.String("reason", "array index must be an integer"),
				slog.String("input", in))
	}

	return idx, nil
}

// parseSegment parses a single path segment with an optional array index.
// Given "config[5]" it returns segment{name: "config", index: 5}; given
// "config" the index is -1. Negative indexes are rejected.
func parseSegment(in string) (segment, error) {
	pos := strings.IndexByte(in, '[')
	if pos < 0 {
		if !isValidName(in) {
			return segment{}, ErrInvalidTag.
				With(slog.String("reason", "segment name contains invalid characters"),
					slog.String("segment", in))
		}

		return segment{name: in, index: -1}, nil
	}

	idx, err := parseIndex(in[pos:])
	if err != nil {
		return segment{}, err
	}

	if idx < 0 {
		return segment{}, ErrInvalidTag.
			With(slog.String("reason", "array index must not be negative"),
				slog.Int("index", idx))
	}

	name := in[:pos]
	if !isValidName(name) {
		return segment{}, ErrInvalidTag.
			With(slog.String("reason", "segment name contains invalid characters"),
				slog.String("segment", in))
	}

	return segment{name: name, index: idx}, nil
}

// Resolve evaluates a dotted/indexed path expression like
// "config.servers[1].name" against a mapping and returns a reference to
// the value it designates.
//
// Every segment except the last must resolve to a nested mapping, or to a
// list whose indexed element is a mapping. The final segment's value is
// returned as-is when it carries no index; with an index it must be a list
// and the indexed element is returned. A name absent from the current
// mapping fails with ErrMissingTag; every other failure (malformed
// segment, negative or out-of-range index, kind mismatch) fails with
// ErrInvalidTag. Indexing into a string is not supported.
func Resolve(path string, kv Map) (*Value, error) {
	rest := path

	for {
		var part string

		pos := strings.IndexByte(rest, '.')
		if pos < 0 {
			part, rest = rest, ""
		} else {
			part, rest = rest[:pos], rest[pos+1:]
		}

		seg, err := parseSegment(part)
		if err != nil {
			return nil, err
		}

		found, ok := kv[seg.name]
		if !ok {
			return nil, ErrMissingTag.
				With(slog.String("name", seg.name),
					slog.String("path", path),
					slog.String("did_you_mean", suggestKeys(seg.name, kv)))
		}

		if rest == "" {
			// Final segment: return the value itself, or the indexed
			// element when the segment carries an index.
			if seg.index < 0 {
				return found, nil
			}

			items, err := found.Items()
			if err != nil {
				return nil, ErrInvalidTag.
					With(slog.String("reason", "only lists support array indexes"),
						slog.String("path", path),
						slog.String("kind", found.Kind().String()))
			}

			if seg.index >= len(items) {
				return nil, ErrInvalidTag.
					With(slog.String("reason", "index out of range"),
						slog.String("path", path),
						slog.Int("index", seg.index),
						slog.Int("length", len(items)))
			}

			return items[seg.index], nil
		}

		// Intermediate segment: descend into a mapping, or into a mapping
		// element of an indexed list.
		switch found.Kind() {
		case KindMapping:
			kv, _ = found.Mapping()

		case KindList:
			items, _ := found.Items()
			if seg.index < 0 || seg.index >= len(items) {
				return nil, ErrInvalidTag.
					With(slog.String("reason", "index out of range"),
						slog.String("path", path),
						slog.Int("index", seg.index),
						slog.Int("length", len(items)))
			}

			element := items[seg.index]
			if element.Kind() != KindMapping {
				return nil, ErrInvalidTag.
					With(slog.String("reason", "indexed element is not a mapping"),
						slog.String("path", path),
						slog.String("kind", element.Kind().String()))
			}

			kv, _ = element.Mapping()

		default:
			return nil, ErrInvalidTag.
				With(slog.String("reason", "name does not reference a mapping"),
					slog.String("path", path),
					slog.String("kind", found.Kind().String()))
		}
	}
}

// ResolveText resolves path and returns its scalar text.
// A value of any other kind fails with ErrInvalidTag.
func ResolveText(path string, kv Map) (string, error) {
	found, err := Resolve(path, kv)
	if err != nil {
		return "", err
	}

	text, err := found.Text()
	if err != nil {
		return "", ErrInvalidTag.
			With(slog.String("reason", "name must reference a string"),
				slog.String("path", path),
				slog.String("kind", found.Kind().String()))
	}

	return text, nil
}

// ResolveList resolves path and returns its ordered items.
// A value of any other kind fails with ErrInvalidTag.
func ResolveList(path string, kv Map) ([]*Value, error) {
	found, err := Resolve(path, kv)
	if err != nil {
		return nil, err
	}

	items, err := found.Items()
	if err != nil {
		return nil, ErrInvalidTag.
			With(slog.String("reason", "name must reference a list"),
				slog.String("path", path),
				slog.String("kind", found.Kind().String()))
	}

	return items, nil
}
