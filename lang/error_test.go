package lang

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestErrorIs(t *testing.T) {
	derived := ErrMissingTag.
		With(slog.String("name", "foo")).
		Wrap(io.EOF)

	if !errors.Is(derived, ErrMissingTag) {
		t.Error("derived error does not match its sentinel")
	}

	if errors.Is(derived, ErrInvalidTag) {
		t.Error("derived error matches an unrelated sentinel")
	}

	if !errors.Is(derived, io.EOF) {
		t.Error("wrapped cause is not reachable via errors.Is")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "message only", err: NewError("bad tag"), want: "bad tag"},
		{name: "wrapped", err: NewError("bad tag").Wrap(io.EOF), want: "bad tag: EOF"},
		{name: "cause only", err: WrapError(io.EOF), want: "EOF"},
		{name: "empty", err: &Error{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorWithPreservesOriginal(t *testing.T) {
	derived := ErrInvalidTag.With(slog.String("tag", "{$x}"))

	if len(derived.attrs) != 1 {
		t.Errorf("derived attrs = %d, want 1", len(derived.attrs))
	}

	if len(ErrInvalidTag.attrs) != 0 {
		t.Error("With mutated the sentinel")
	}
}

func TestWrapErrorPassthrough(t *testing.T) {
	original := ErrInvalidTag.With(slog.String("tag", "x"))

	if wrapped := WrapError(original); wrapped != original {
		t.Error("WrapError re-wrapped an existing Error")
	}
}

func TestErrorLogValue(t *testing.T) {
	value := ErrMissingTag.With(slog.String("name", "foo")).LogValue()

	if value.Kind() != slog.KindGroup {
		t.Fatalf("LogValue kind = %v, want group", value.Kind())
	}

	if len(value.Group()) < 2 {
		t.Errorf("LogValue group = %d attrs, want at least 2", len(value.Group()))
	}
}
