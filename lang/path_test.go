package lang

import (
	"errors"
	"testing"
)

func testContext() Map {
	return Map{
		"name": NewString("world"),
		"config": NewMapping(Map{
			"server": NewMapping(Map{
				"hostname": NewString("localhost"),
			}),
			"servers": NewList(
				NewMapping(Map{
					"hostname":  NewString("alpha"),
					"hostnames": NewStringList("localhost", "game-server"),
				}),
				NewMapping(Map{
					"hostname": NewString("beta"),
				}),
			),
		}),
		"users": NewStringList("john", "jane"),
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain name", path: "name", want: "world"},
		{name: "nested mapping", path: "config.server.hostname", want: "localhost"},
		{name: "list element", path: "users[0]", want: "john"},
		{name: "last list element", path: "users[1]", want: "jane"},
		{name: "indexed intermediate", path: "config.servers[1].hostname", want: "beta"},
		{name: "index at both positions", path: "config.servers[0].hostnames[1]", want: "game-server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Resolve(tt.path, testContext())
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.path, err)
			}

			text, err := value.Text()
			if err != nil {
				t.Fatalf("Text() error: %v", err)
			}

			if text != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, text, tt.want)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing name", path: "missing", want: ErrMissingTag},
		{name: "missing nested name", path: "config.server.ip", want: ErrMissingTag},
		{name: "missing root of path", path: "nothing.here", want: ErrMissingTag},
		{name: "index out of range", path: "users[2]", want: ErrInvalidTag},
		{name: "negative index", path: "users[-1]", want: ErrInvalidTag},
		{name: "index on string", path: "name[0]", want: ErrInvalidTag},
		{name: "index on mapping", path: "config[0]", want: ErrInvalidTag},
		{name: "descend into string", path: "name.x", want: ErrInvalidTag},
		{name: "descend into unindexed list", path: "users.x", want: ErrInvalidTag},
		{name: "descend into string element", path: "users[0].x", want: ErrInvalidTag},
		{name: "intermediate index out of range", path: "config.servers[9].hostname", want: ErrInvalidTag},
		{name: "unterminated index", path: "users[0", want: ErrInvalidTag},
		{name: "empty index", path: "users[]", want: ErrInvalidTag},
		{name: "non-integer index", path: "users[x]", want: ErrInvalidTag},
		{name: "empty segment", path: "config..server", want: ErrInvalidTag},
		{name: "empty path", path: "", want: ErrInvalidTag},
		{name: "bad characters", path: "foo&bar", want: ErrInvalidTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.path, testContext())
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve(%q) error = %v, want %v", tt.path, err, tt.want)
			}
		})
	}
}

func TestResolveIndexWhitespace(t *testing.T) {
	value, err := Resolve("users[ 1 ]", testContext())
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	text, _ := value.Text()
	if text != "jane" {
		t.Errorf("Resolve = %q, want %q", text, "jane")
	}
}

func TestResolveText(t *testing.T) {
	text, err := ResolveText("config.server.hostname", testContext())
	if err != nil {
		t.Fatalf("ResolveText error: %v", err)
	}

	if text != "localhost" {
		t.Errorf("ResolveText = %q, want %q", text, "localhost")
	}

	if _, err := ResolveText("users", testContext()); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("ResolveText on list: got %v, want ErrInvalidTag", err)
	}

	if _, err := ResolveText("missing", testContext()); !errors.Is(err, ErrMissingTag) {
		t.Errorf("ResolveText on missing: got %v, want ErrMissingTag", err)
	}
}

func TestResolveList(t *testing.T) {
	items, err := ResolveList("users", testContext())
	if err != nil {
		t.Fatalf("ResolveList error: %v", err)
	}

	if len(items) != 2 {
		t.Errorf("ResolveList length = %d, want 2", len(items))
	}

	if _, err := ResolveList("name", testContext()); !errors.Is(err, ErrInvalidTag) {
		t.Errorf("ResolveList on string: got %v, want ErrInvalidTag", err)
	}

	if _, err := ResolveList("missing", testContext()); !errors.Is(err, ErrMissingTag) {
		t.Errorf("ResolveList on missing: got %v, want ErrMissingTag", err)
	}
}

func TestResolveSharedReference(t *testing.T) {
	kv := testContext()

	first, err := Resolve("config.server", kv)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	second, err := Resolve("config.server", kv)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	if first != second {
		t.Error("repeated resolution returned different handles")
	}
}

func TestSuggestKeys(t *testing.T) {
	kv := Map{
		"hostname": NewString("a"),
		"hostport": NewString("b"),
		"user":     NewString("c"),
	}

	got := suggestKeys("hostnam", kv)
	if got == "" {
		t.Fatal("expected suggestions for near-miss key")
	}

	if got := suggestKeys("zzz", kv); got != "" {
		t.Errorf("expected no suggestions, got %q", got)
	}
}
