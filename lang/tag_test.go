package lang

import (
	"errors"
	"testing"
)

func TestParseValueTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		ok   bool
	}{
		{name: "plain", tag: "{$name}", ok: true},
		{name: "inner spaces", tag: "{$   azAZ09-_   }", ok: true},
		{name: "dotted path", tag: "{$ config.server.hostname }", ok: true},
		{name: "indexed path", tag: "{$ users[0] }", ok: true},
		{name: "bad characters", tag: "{$foo&bar}", ok: false},
		{name: "embedded space", tag: "{$foo bar}", ok: false},
		{name: "empty name", tag: "{$ }", ok: false},
		{name: "wrong delimiters", tag: "{name}", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseValueTag(tt.tag)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseValueTag(%q) error: %v", tt.tag, err)
				}

				if node.Type() != NodeValue {
					t.Errorf("Type() = %v, want %v", node.Type(), NodeValue)
				}

				return
			}

			if !errors.Is(err, ErrInvalidTag) {
				t.Errorf("ParseValueTag(%q): got %v, want ErrInvalidTag", tt.tag, err)
			}
		})
	}
}

func TestParseIfTag(t *testing.T) {
	node, err := ParseIfTag("{% if debug %}")
	if err != nil {
		t.Fatalf("ParseIfTag error: %v", err)
	}

	if node.Type() != NodeIf {
		t.Errorf("Type() = %v, want %v", node.Type(), NodeIf)
	}

	for _, tag := range []string{
		"{% fi debug %}",
		"{% if %}",
		"{% if foo&bar %}",
		"{ if debug %}",
	} {
		if _, err := ParseIfTag(tag); !errors.Is(err, ErrInvalidTag) {
			t.Errorf("ParseIfTag(%q): got %v, want ErrInvalidTag", tag, err)
		}
	}
}

func TestParseElifTag(t *testing.T) {
	node, err := ParseElifTag("{% elif test %}")
	if err != nil {
		t.Fatalf("ParseElifTag error: %v", err)
	}

	if node.Type() != NodeElif {
		t.Errorf("Type() = %v, want %v", node.Type(), NodeElif)
	}

	if _, err := ParseElifTag("{% elif %}"); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("ParseElifTag without name: got %v, want ErrInvalidTag", err)
	}
}

func TestParseElseTag(t *testing.T) {
	if _, err := ParseElseTag("{% else %}"); err != nil {
		t.Fatalf("ParseElseTag error: %v", err)
	}

	for _, tag := range []string{
		"{% else what %}",
		"{% %}",
		"{ else }",
	} {
		if _, err := ParseElseTag(tag); !errors.Is(err, ErrInvalidTag) {
			t.Errorf("ParseElseTag(%q): got %v, want ErrInvalidTag", tag, err)
		}
	}
}

func TestParseForTag(t *testing.T) {
	node, err := ParseForTag("{% for users as user %}")
	if err != nil {
		t.Fatalf("ParseForTag error: %v", err)
	}

	if node.Type() != NodeFor {
		t.Errorf("Type() = %v, want %v", node.Type(), NodeFor)
	}

	// Structural violations are syntax errors, not tag errors.
	for _, tag := range []string{
		"{% for %}",
		"{% for users %}",
		"{% for users as %}",
		"{% for users user %}",
		"{% for users into user %}",
		"{% for users as user extra %}",
	} {
		if _, err := ParseForTag(tag); !errors.Is(err, ErrExpressionSyntax) {
			t.Errorf("ParseForTag(%q): got %v, want ErrExpressionSyntax", tag, err)
		}
	}

	// Name-content violations are tag errors.
	for _, tag := range []string{
		"{% for servers as user.id %}",
		"{% for servers as user[0] %}",
		"{% for ser&vers as user %}",
	} {
		if _, err := ParseForTag(tag); !errors.Is(err, ErrInvalidTag) {
			t.Errorf("ParseForTag(%q): got %v, want ErrInvalidTag", tag, err)
		}
	}
}

func TestParseForTagDottedSource(t *testing.T) {
	for _, tag := range []string{
		"{% for users.active as user %}",
		"{% for users[0] as user %}",
		"{% for groups[0] as user %}",
	} {
		if _, err := ParseForTag(tag); err != nil {
			t.Errorf("ParseForTag(%q) error: %v", tag, err)
		}
	}
}
