package core

import "fmt"

// FailureKind classifies why a scenario failed.
type FailureKind int

// Failure kinds. All but CardinalityUnmet are raised at call time.
const (
	UnexpectedCall FailureKind = iota + 1
	ArgumentMismatch
	CardinalityExceeded
	NeverViolated
	CardinalityUnmet
	ExplicitFailure
	DoubleFailureSuppressed
)

// String returns the kind's name.
func (k FailureKind) String() string {
	switch k {
	case UnexpectedCall:
		return "UnexpectedCall"
	case ArgumentMismatch:
		return "ArgumentMismatch"
	case CardinalityExceeded:
		return "CardinalityExceeded"
	case NeverViolated:
		return "NeverViolated"
	case CardinalityUnmet:
		return "CardinalityUnmet"
	case ExplicitFailure:
		return "ExplicitFailure"
	case DoubleFailureSuppressed:
		return "DoubleFailureSuppressed"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure is a behavioral mismatch detected by a scenario.
// It carries only rendered text, never the call's argument values.
type Failure struct {
	Kind    FailureKind
	Message string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Message
}

func newFailure(kind FailureKind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// errorf formats a programmer-error message, used as a panic value.
func errorf(format string, args ...any) string {
	return "impmock: " + fmt.Sprintf(format, args...)
}
