package lang

import "log/slog"

// Kind indicates the kind of data a Value holds.
type Kind int

const (
	// KindInvalid represents an uninitialized Value.
	KindInvalid Kind = iota

	// KindString represents a scalar text value.
	KindString

	// KindList represents an ordered, 0-indexed sequence of values.
	KindList

	// KindMapping represents a named collection of values.
	KindMapping
)

// String returns a string representation of the value kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"

	case KindList:
		return "List"

	case KindMapping:
		return "Mapping"

	default:
		return "Invalid"
	}
}

// Map is the name→Value environment visible to a node during evaluation.
// The top-level Map passed to rendering is the initial context.
type Map map[string]*Value

// Value is a recursive tagged value holding a string scalar, an ordered
// list of values, or a named mapping of values.
//
// Values are handles with shared ownership: the same *Value may be
// referenced from multiple contexts simultaneously (across loop iterations
// or nested scopes) without copying. Values are immutable once constructed,
// so sharing is safe for concurrent renders. The constructors offer no way
// to insert a value into itself, so acyclicity holds by construction.
type Value struct {
	kind    Kind
	text    string
	items   []*Value
	entries Map
}

// NewString creates a scalar text Value.
func NewString(text string) *Value {
	return &Value{kind: KindString, text: text}
}

// NewList creates an ordered list Value from the given items.
func NewList(items ...*Value) *Value {
	return &Value{kind: KindList, items: items}
}

// NewStringList creates a list Value whose items are scalar text values.
func NewStringList(items ...string) *Value {
	values := make([]*Value, len(items))
	for i, item := range items {
		values[i] = NewString(item)
	}

	return &Value{kind: KindList, items: values}
}

// NewMapping creates a mapping Value from the given entries.
// The entries map is referenced, not copied.
func NewMapping(entries Map) *Value {
	return &Value{kind: KindMapping, entries: entries}
}

// Kind returns the discriminant kind of the value.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}

	return v.kind
}

// Empty reports whether the value holds no data.
func (v *Value) Empty() bool {
	switch v.Kind() {
	case KindString:
		return v.text == ""

	case KindList:
		return len(v.items) == 0

	case KindMapping:
		return len(v.entries) == 0

	default:
		return true
	}
}

// Text returns the scalar text of a KindString value.
// Calling Text on any other kind fails with ErrTypeMismatch; callers must
// check Kind first.
func (v *Value) Text() (string, error) {
	if v.Kind() != KindString {
		return "", ErrTypeMismatch.
			With(slog.String("kind", v.Kind().String()),
				slog.String("want", KindString.String()))
	}

	return v.text, nil
}

// Items returns the ordered child sequence of a KindList value.
// Calling Items on any other kind fails with ErrTypeMismatch.
func (v *Value) Items() ([]*Value, error) {
	if v.Kind() != KindList {
		return nil, ErrTypeMismatch.
			With(slog.String("kind", v.Kind().String()),
				slog.String("want", KindList.String()))
	}

	return v.items, nil
}

// Mapping returns the named entries of a KindMapping value.
// Calling Mapping on any other kind fails with ErrTypeMismatch.
func (v *Value) Mapping() (Map, error) {
	if v.Kind() != KindMapping {
		return nil, ErrTypeMismatch.
			With(slog.String("kind", v.Kind().String()),
				slog.String("want", KindMapping.String()))
	}

	return v.entries, nil
}
