package basic

import (
	"errors"
	"fmt"
)

// Ops demonstrates the core mocking features of impmock.
// It covers single and multiple return values, void methods, and variadic arguments.
type Ops interface {
	// Add demonstrates a simple method with parameters and a single return value.
	Add(a, b int) int

	// Store demonstrates a method with multiple return values (common for error handling).
	Store(key string, value any) (int, error)

	// Log demonstrates a void method (no return values).
	Log(message string)

	// Notify demonstrates variadic arguments.
	Notify(message string, ids ...int) bool

	// Finish demonstrates a method with no parameters.
	Finish() bool
}

// PerformOps is a helper that uses the Ops interface.
func PerformOps(ops Ops) error {
	const (
		val1 = 1
		val2 = 2
		val3 = 3
	)

	sum := ops.Add(val1, val2)

	if _, err := ops.Store("sum", sum); err != nil {
		return fmt.Errorf("storing sum: %w", err)
	}

	ops.Log("action performed")

	if !ops.Notify("alert", val1, val2, val3) {
		ops.Log("nobody listening")
	}

	if !ops.Finish() {
		return errNotFinished
	}

	return nil
}

// unexported variables.
var (
	errNotFinished = errors.New("ops did not finish")
)
