package assert

import (
	"fmt"
	"testing"
)

func TestEqualSliceOfStrings(t *testing.T) {

	var tests = []struct {
		sliceA         []string
		sliceB         []string
		expectedOutput bool
	}{
		{
			[]string{"A", "B", "C"},
			[]string{"A", "B", "C"},
			true,
		},
		{
			[]string{"A", "B"},
			[]string{"A", "B", "C"},
			false,
		},
		{
			[]string{},
			[]string{"A", "B", "C"},
			false,
		},
		{
			nil,
			[]string{"A", "B", "C"},
			false,
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("for slices '%v' and '%v'", test.sliceA, test.sliceB), func(t *testing.T) {
			actualOutput := EqualSliceOfStrings(test.sliceA, test.sliceB)

			if actualOutput != test.expectedOutput {
				t.Errorf("expected output '%v', got '%v'", test.expectedOutput, actualOutput)
			}
		})
	}
}

func TestIsEqualForErrors(t *testing.T) {

	t.Run("two errors made with fmt.Errorf(..) compare equal", func(t *testing.T) {
		got := isEqual(fmt.Errorf("foo"), fmt.Errorf("foo"))

		if !got {
			t.Fatalf("expected errors to compare equal, but they didn't")
		}
	})

	t.Run("error made with fmt.Errorf(..) not equal to custom typed error", func(t *testing.T) {
		customError := &customErrorType1{}
		got := isEqual(fmt.Errorf("foo"), customError)

		if got {
			t.Fatalf("didn't expect errors to compare true due to different types")
		}
	})
}

type customErrorType1 struct{}

func (e *customErrorType1) Error() string { return "foo" }
