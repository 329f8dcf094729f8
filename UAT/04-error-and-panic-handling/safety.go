// Package safety shows how impmock injects panics and errors into a
// dependency so the caller's recovery paths can be tested.
package safety

import "fmt"

// CriticalDependency is a collaborator that may fail catastrophically.
type CriticalDependency interface {
	DoWork() error
}

// SafeRunner calls DoWork and recovers from a panic, reporting false.
func SafeRunner(dep CriticalDependency) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	return dep.DoWork() == nil
}

// UnsafeRunner calls DoWork and lets a panic propagate.
func UnsafeRunner(dep CriticalDependency) error {
	if err := dep.DoWork(); err != nil {
		return fmt.Errorf("work failed: %w", err)
	}

	return nil
}
