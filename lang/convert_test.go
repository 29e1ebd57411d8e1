package lang

import (
	"context"
	"errors"
	"testing"
)

func TestFromAnyScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "hello", want: "hello"},
		{name: "nil", in: nil, want: ""},
		{name: "bool", in: true, want: "true"},
		{name: "int", in: 42, want: "42"},
		{name: "int64", in: int64(-7), want: "-7"},
		{name: "uint64", in: uint64(7), want: "7"},
		{name: "float", in: 3.5, want: "3.5"},
		{name: "whole float", in: float64(8080), want: "8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := FromAny(tt.in)
			if err != nil {
				t.Fatalf("FromAny(%v) error: %v", tt.in, err)
			}

			text, err := value.Text()
			if err != nil {
				t.Fatalf("Text() error: %v", err)
			}

			if text != tt.want {
				t.Errorf("FromAny(%v) = %q, want %q", tt.in, text, tt.want)
			}
		})
	}
}

func TestFromAnyNested(t *testing.T) {
	in := map[string]any{
		"name": "world",
		"servers": []any{
			map[string]any{"hostname": "alpha", "port": 8080},
			map[string]any{"hostname": "beta"},
		},
		"tags": []string{"a", "b"},
	}

	kv, err := MappingFromAny(in)
	if err != nil {
		t.Fatalf("MappingFromAny error: %v", err)
	}

	text, err := ResolveText("servers[0].hostname", kv)
	if err != nil {
		t.Fatalf("ResolveText error: %v", err)
	}

	if text != "alpha" {
		t.Errorf("ResolveText = %q, want %q", text, "alpha")
	}

	text, err = ResolveText("servers[0].port", kv)
	if err != nil {
		t.Fatalf("ResolveText error: %v", err)
	}

	if text != "8080" {
		t.Errorf("ResolveText = %q, want %q", text, "8080")
	}

	items, err := ResolveList("tags", kv)
	if err != nil {
		t.Fatalf("ResolveList error: %v", err)
	}

	if len(items) != 2 {
		t.Errorf("ResolveList length = %d, want 2", len(items))
	}
}

func TestFromAnyPassthrough(t *testing.T) {
	original := NewString("x")

	value, err := FromAny(original)
	if err != nil {
		t.Fatalf("FromAny error: %v", err)
	}

	if value != original {
		t.Error("FromAny copied an existing Value")
	}
}

func TestFromAnyUnsupported(t *testing.T) {
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("FromAny on struct: got %v, want ErrTypeMismatch", err)
	}

	_, err := MappingFromAny(map[string]any{"bad": make(chan int)})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("MappingFromAny: got %v, want ErrTypeMismatch", err)
	}
}

func TestFromAnyRenders(t *testing.T) {
	kv, err := MappingFromAny(map[string]any{
		"users": []any{"john", "jane"},
	})
	if err != nil {
		t.Fatalf("MappingFromAny error: %v", err)
	}

	tpl, err := ParseString(context.Background(),
		"{% for users as user %}{$ user },{% endfor %}")
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}

	out, err := tpl.RenderString(kv)
	if err != nil {
		t.Fatalf("RenderString error: %v", err)
	}

	if out != "john,jane," {
		t.Errorf("render = %q, want %q", out, "john,jane,")
	}
}
