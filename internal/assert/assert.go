package assert

import (
	"fmt"
)

// That panics with the formatted message if cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}

func SameLength[A, B any](a []A, b []B, what string) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("%s: expected same length, got %d and %d", what, len(a), len(b)))
	}
}
