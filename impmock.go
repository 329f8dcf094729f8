// Package impmock provides expectation-based test doubles for Go.
// Tests declare the calls they expect on stand-in objects, the code under
// test calls them, and the scenario fails the test on any call that was not
// expected, carries the wrong arguments, arrives out of order, or never
// happens.
//
// Proxies are written by hand or generated elsewhere; they reach the engine
// through Mock.Dispatch and Invoke, and their builders through NewCall.
//
// This is the public API entry point. Implementation lives in internal/core.
package impmock

import (
	"cmp"

	"github.com/onsi/gomega/types"
	"github.com/rs/zerolog"
	"github.com/toejough/impmock/internal/core"
)

// Args holds the actual arguments of one call, in declaration order.
type Args = core.Args

// Call builds the expectation for one call of a mocked method whose result type is R.
type Call[R any] = core.Call[R]

// NewCall starts the expectation for one call of method on mock. Each arg
// is a Matcher or a bare value compared with Eq.
func NewCall[R any](mock *Mock, method string, args ...any) *Call[R] {
	return core.NewCall[R](mock, method, args...)
}

// CallSpec is one registered expected invocation.
type CallSpec = core.CallSpec

// Cardinality is how many times a call must happen.
type Cardinality = core.Cardinality

// Expectation is a *Call or a *Sequence.
type Expectation = core.Expectation

// Failure is a behavioral mismatch detected by a scenario.
type Failure = core.Failure

// FailureKind classifies a Failure.
type FailureKind = core.FailureKind

// Failure kinds re-exported from internal/core.
const (
	UnexpectedCall          = core.UnexpectedCall
	ArgumentMismatch        = core.ArgumentMismatch
	CardinalityExceeded     = core.CardinalityExceeded
	NeverViolated           = core.NeverViolated
	CardinalityUnmet        = core.CardinalityUnmet
	ExplicitFailure         = core.ExplicitFailure
	DoubleFailureSuppressed = core.DoubleFailureSuppressed
)

// Matcher is a predicate over a single call argument.
type Matcher = core.Matcher

// Mock is the engine-side handle of one stand-in object.
type Mock = core.Mock

// MockID identifies a mock within its scenario.
type MockID = core.MockID

// Option configures a Scenario.
type Option = core.Option

// Scenario owns the mocks and expectations of one test.
type Scenario = core.Scenario

// NewScenario creates a scenario reporting to t. With a *testing.T, the
// expectations are verified when the test ends.
func NewScenario(t TestReporter, options ...Option) *Scenario {
	return core.NewScenario(t, options...)
}

// Sequence is an ordered group of expectations.
type Sequence = core.Sequence

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return core.NewSequence()
}

// TestReporter is the minimal interface impmock needs from test frameworks.
type TestReporter = core.TestReporter

// Any matches every value.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var Any = core.Any

// And matches when both matchers match.
func And(first, second Matcher) Matcher {
	return core.And(first, second)
}

// ArgAt returns argument i of a call as a T.
func ArgAt[T any](args Args, i int) T {
	return core.ArgAt[T](args, i)
}

// Eq matches arguments equal to expected.
func Eq(expected any) Matcher {
	return core.Eq(expected)
}

// Ge matches arguments greater than or equal to bound.
func Ge[T cmp.Ordered](bound T) Matcher {
	return core.Ge(bound)
}

// Gt matches arguments greater than bound.
func Gt[T cmp.Ordered](bound T) Matcher {
	return core.Gt(bound)
}

// Invoke dispatches a call and returns its result as an R.
func Invoke[R any](mock *Mock, method string, args ...any) R {
	return core.Invoke[R](mock, method, args...)
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

// Run creates a scenario, passes it to body, and verifies it when body
// returns. Verification is skipped while a panic or t.Fatal unwinds body.
func Run(t TestReporter, body func(*Scenario), options ...Option) {
	t.Helper()

	core.Run(t, body, options...)
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
func Satisfy[T any](predicate func(T) error) Matcher {
	return core.Satisfy(predicate)
}

// That adapts a gomega matcher for use as an argument matcher.
func That(matcher types.GomegaMatcher) Matcher {
	return core.That(matcher)
}

// WithEmphasis renders mock labels in bold terminal text.
func WithEmphasis() Option {
	return core.WithEmphasis()
}

// WithLogger traces scenario events to logger.
func WithLogger(logger zerolog.Logger) Option {
	return core.WithLogger(logger)
}

// WithTestLogger traces scenario events to the test's log.
func WithTestLogger(t zerolog.TestingLog) Option {
	return core.WithTestLogger(t)
}
