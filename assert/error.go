package assert

import (
	"strings"
	"testing"
)

func ErrorIsNil(t *testing.T, got error) {
	t.Helper()
	if got != nil {
		t.Fatalf("unexpected error: '%s'", got)
	}
}

func ErrorIsNotNil(t *testing.T, got error) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected an error, but got none")
	}
}

// ErrorContains fails unless got is a non-nil error whose message contains
// substring.
func ErrorContains(t *testing.T, got error, substring string) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected an error containing '%s', but got none", substring)
	}
	if !strings.Contains(got.Error(), substring) {
		t.Fatalf("expected error containing '%s', got '%s'", substring, got)
	}
}
