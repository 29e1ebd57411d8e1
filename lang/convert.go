package lang

import (
	"log/slog"
	"strconv"
)

// FromAny converts a generic Go value of the shapes produced by YAML and
// JSON decoding into a Value. Scalars become strings (booleans and
// numbers are formatted), sequences become lists, and string-keyed maps
// become mappings. Unsupported shapes fail with ErrTypeMismatch.
func FromAny(in any) (*Value, error) {
	switch v := in.(type) {
	case nil:
		return NewString(""), nil

	case *Value:
		return v, nil

	case string:
		return NewString(v), nil

	case bool:
		return NewString(strconv.FormatBool(v)), nil

	case int:
		return NewString(strconv.Itoa(v)), nil

	case int64:
		return NewString(strconv.FormatInt(v, 10)), nil

	case uint64:
		return NewString(strconv.FormatUint(v, 10)), nil

	case float64:
		return NewString(strconv.FormatFloat(v, 'g', -1, 64)), nil

	case []string:
		return NewStringList(v...), nil

	case []any:
		items := make([]*Value, len(v))
		for i, item := range v {
			value, err := FromAny(item)
			if err != nil {
				return nil, err
			}

			items[i] = value
		}

		return NewList(items...), nil

	case Map:
		return NewMapping(v), nil

	case map[string]any:
		entries, err := MappingFromAny(v)
		if err != nil {
			return nil, err
		}

		return NewMapping(entries), nil

	default:
		return nil, ErrTypeMismatch.
			With(slog.String("reason", "unsupported value shape"),
				slog.Any("value", in))
	}
}

// MappingFromAny converts a string-keyed map of generic Go values into a
// Map suitable for rendering.
func MappingFromAny(in map[string]any) (Map, error) {
	kv := make(Map, len(in))

	for key, value := range in {
		converted, err := FromAny(value)
		if err != nil {
			return nil, ErrTypeMismatch.Wrap(err).
				With(slog.String("key", key))
		}

		kv[key] = converted
	}

	return kv, nil
}
