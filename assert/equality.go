package assert

import (
	"reflect"
	"testing"
)

// Equal compares expected against got and calls t.Fatalf with a message if
// they differ.
func Equal(t *testing.T, expected interface{}, got interface{}) {
	t.Helper()
	if !isEqual(expected, got) {
		t.Fatalf("expected '%v', got '%v'", expected, got)
	}
}

// EqualSliceOfStrings tells whether a and b contain the same elements.
// A nil argument is equivalent to an empty slice.
func EqualSliceOfStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}

// AssertEqualSliceOfStrings compares two string slices and calls t.Fatalf
// with a message if they differ.
func AssertEqualSliceOfStrings(t *testing.T, expected, got []string) {
	t.Helper()
	if len(expected) != len(got) {
		t.Fatalf("expected length %d, got %d. expected: %v, got: %v",
			len(expected), len(got), expected, got)
	}
	for i := range expected {
		if expected[i] != got[i] {
			t.Fatalf("expected[%d] differs, expected '%s', got '%s'", i, expected[i], got[i])
		}
	}
}

// isEqual compares a and b with reflect.DeepEqual, except that two errors
// compare equal when their messages match.
func isEqual(a interface{}, b interface{}) bool {
	errA, aIsError := a.(error)
	errB, bIsError := b.(error)

	if aIsError != bIsError {
		return false
	}

	if aIsError && bIsError {
		if reflect.TypeOf(errA) != reflect.TypeOf(errB) {
			return false
		}
		return errA.Error() == errB.Error()
	}

	return reflect.DeepEqual(a, b)
}
