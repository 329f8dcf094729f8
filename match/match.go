// Package match provides the argument matchers for impmock expectations
// under short names, for dot-importing into test files:
//
//	import . "github.com/toejough/impmock/match"
//
//	scenario.Expect(expect.Add(Lt(10), BeAny).ReturnClone(42).Times(2))
//
// Not, And, Or and Satisfy share their names with gomega matchers. Test files
// that dot-import gomega should import this package under a name instead.
package match

import (
	"cmp"

	"github.com/onsi/gomega/types"
	"github.com/toejough/impmock/internal/core"
)

// Matcher is a predicate over a single call argument.
type Matcher = core.Matcher

// BeAny is a matcher that matches any value. It renders as "_".
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny = core.Any

// And matches when both matchers match.
func And(first, second Matcher) Matcher {
	return core.And(first, second)
}

// Eq matches arguments equal to expected. Bare values passed to a builder
// are compared this way already.
func Eq(expected any) Matcher {
	return core.Eq(expected)
}

// Ge matches arguments greater than or equal to bound. The argument must
// have bound's type.
func Ge[T cmp.Ordered](bound T) Matcher {
	return core.Ge(bound)
}

// Gt matches arguments greater than bound.
func Gt[T cmp.Ordered](bound T) Matcher {
	return core.Gt(bound)
}

// Le matches arguments less than or equal to bound.
func Le[T cmp.Ordered](bound T) Matcher {
	return core.Le(bound)
}

// Lt matches arguments less than bound.
func Lt[T cmp.Ordered](bound T) Matcher {
	return core.Lt(bound)
}

// Ne matches arguments not equal to unexpected.
func Ne(unexpected any) Matcher {
	return core.Ne(unexpected)
}

// Not matches when inner does not.
func Not(inner Matcher) Matcher {
	return core.Not(inner)
}

// Or matches when either matcher matches.
func Or(first, second Matcher) Matcher {
	return core.Or(first, second)
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	expect.Add(Satisfy(func(x int) error {
//	    if x < 0 { return fmt.Errorf("expected positive, got %d", x) }
//	    return nil
//	}), BeAny)
func Satisfy[T any](predicate func(T) error) Matcher {
	return core.Satisfy(predicate)
}

// That adapts a gomega matcher, e.g. That(BeNumerically(">", 0)).
func That(matcher types.GomegaMatcher) Matcher {
	return core.That(matcher)
}
