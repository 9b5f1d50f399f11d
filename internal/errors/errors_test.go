package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	withCause := NewParsingError("bad document", ErrInvalidJSON)
	if got := withCause.Error(); !strings.Contains(got, "parsing: bad document") {
		t.Errorf("Error() = %q, want it to contain type and message", got)
	}

	withoutCause := NewConfigError("bad flag", nil)
	if got := withoutCause.Error(); got != "config: bad flag" {
		t.Errorf("Error() = %q, want %q", got, "config: bad flag")
	}
}

func TestAppError_UnwrapsSentinel(t *testing.T) {
	err := NewConfigError("no terms", ErrNoTerms)
	if !stderrors.Is(err, ErrNoTerms) {
		t.Error("errors.Is() should match the wrapped sentinel")
	}
	if stderrors.Is(err, ErrConflictingMode) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}

func TestAppError_IsMatchesOnType(t *testing.T) {
	a := NewScanError("one", nil)
	b := NewScanError("two", ErrInvalidJSON)
	if !stderrors.Is(a, b) {
		t.Error("two scan errors should compare equal by type")
	}
	if stderrors.Is(a, NewOutputError("other", nil)) {
		t.Error("errors of different types should not compare equal")
	}
}

func TestIsConfigError(t *testing.T) {
	if !IsConfigError(NewConfigError("x", nil)) {
		t.Error("IsConfigError() = false for a config error")
	}
	if IsConfigError(NewInputError("x", nil)) {
		t.Error("IsConfigError() = true for an input error")
	}
	if IsConfigError(stderrors.New("plain")) {
		t.Error("IsConfigError() = true for a plain error")
	}
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config app error", NewConfigError("conflicting flags", nil), "Configuration error: conflicting flags"},
		{"parsing app error", NewParsingError("bad token", nil), "JSON parsing error: bad token"},
		{"no terms sentinel", ErrNoTerms, "Error: No search terms provided. Use --keys, --key, --keys-file, or provide terms interactively."},
		{"path sentinel", ErrPathNotFound, "Error: The path to scan does not exist. Please check the path argument."},
		{"unknown error", stderrors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserFriendlyError(tt.err); got != tt.want {
				t.Errorf("UserFriendlyError() = %q, want %q", got, tt.want)
			}
		})
	}
}
