package core

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/onsi/gomega/types"
)

// Matcher is a predicate over a single call argument.
// Match returns nil for a match, or an error whose text explains the mismatch.
// String describes the matcher in expectation signatures, e.g. "lt(2)".
type Matcher interface {
	Match(actual any) error
	String() string
}

// Any matches every value. It renders as "_".
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var Any Matcher = anyMatcher{}

// And matches when both matchers match. second is not evaluated if first fails.
func And(first, second Matcher) Matcher {
	return andMatcher{first: first, second: second}
}

// Eq matches arguments equal to expected.
func Eq(expected any) Matcher {
	return eqMatcher{expected: expected}
}

// Ge matches arguments greater than or equal to bound.
func Ge[T cmp.Ordered](bound T) Matcher {
	return orderedMatcher[T]{
		name:     "ge",
		bound:    bound,
		relation: "not greater than or equal to",
		holds:    func(actual, bound T) bool { return actual >= bound },
	}
}

// Gt matches arguments greater than bound.
func Gt[T cmp.Ordered](bound T) Matcher {
	return orderedMatcher[T]{
		name:     "gt",
		bound:    bound,
		relation: "not greater than",
		holds:    func(actual, bound T) bool { return actual > bound },
	}
}

// Le matches arguments less than or equal to bound.
func Le[T cmp.Ordered](bound T) Matcher {
	return orderedMatcher[T]{
		name:     "le",
		bound:    bound,
		relation: "not less than or equal to",
		holds:    func(actual, bound T) bool { return actual <= bound },
	}
}

// Lt matches arguments less than bound.
func Lt[T cmp.Ordered](bound T) Matcher {
	return orderedMatcher[T]{
		name:     "lt",
		bound:    bound,
		relation: "not less than",
		holds:    func(actual, bound T) bool { return actual < bound },
	}
}

// MatcherFor returns arg itself if it is a Matcher, and Eq(arg) otherwise.
func MatcherFor(arg any) Matcher {
	if m, ok := arg.(Matcher); ok {
		return m
	}

	return Eq(arg)
}

// Ne matches arguments not equal to unexpected.
func Ne(unexpected any) Matcher {
	return neMatcher{unexpected: unexpected}
}

// Not matches when inner does not.
func Not(inner Matcher) Matcher {
	return notMatcher{inner: inner}
}

// Or matches when either matcher matches. second is not evaluated if first matches.
func Or(first, second Matcher) Matcher {
	return orMatcher{first: first, second: second}
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
func Satisfy[T any](predicate func(T) error) Matcher {
	return satisfyMatcher[T]{predicate: predicate}
}

// That adapts a gomega matcher, so BeNumerically, HaveField and friends can
// constrain arguments.
func That(matcher types.GomegaMatcher) Matcher {
	return gomegaMatcher{matcher: matcher}
}

// unexported variables.
var (
	errTypeMismatch = errors.New("type mismatch")
)

type andMatcher struct {
	first, second Matcher
}

func (m andMatcher) Match(actual any) error {
	if err := m.first.Match(actual); err != nil {
		return err
	}

	return m.second.Match(actual)
}

func (m andMatcher) String() string {
	return fmt.Sprintf("and(%s, %s)", m.first, m.second)
}

type anyMatcher struct{}

func (anyMatcher) Match(any) error {
	return nil
}

func (anyMatcher) String() string {
	return "_"
}

type eqMatcher struct {
	expected any
}

func (m eqMatcher) Match(actual any) error {
	if valuesEqual(actual, m.expected) {
		return nil
	}

	//nolint:err113 // mismatch text is the diagnostic
	return fmt.Errorf("%s is not equal to %s", FormatValue(actual), FormatValue(m.expected))
}

func (m eqMatcher) String() string {
	return FormatValue(m.expected)
}

type gomegaMatcher struct {
	matcher types.GomegaMatcher
}

func (m gomegaMatcher) Match(actual any) error {
	success, err := m.matcher.Match(actual)
	if err != nil {
		return err
	}

	if !success {
		//nolint:err113 // mismatch text is the diagnostic
		return errors.New(m.matcher.FailureMessage(actual))
	}

	return nil
}

func (m gomegaMatcher) String() string {
	return fmt.Sprintf("that(%T)", m.matcher)
}

type neMatcher struct {
	unexpected any
}

func (m neMatcher) Match(actual any) error {
	if !valuesEqual(actual, m.unexpected) {
		return nil
	}

	//nolint:err113 // mismatch text is the diagnostic
	return fmt.Errorf("%s is equal to %s", FormatValue(actual), FormatValue(m.unexpected))
}

func (m neMatcher) String() string {
	return fmt.Sprintf("ne(%s)", FormatValue(m.unexpected))
}

type notMatcher struct {
	inner Matcher
}

func (m notMatcher) Match(actual any) error {
	if m.inner.Match(actual) != nil {
		return nil
	}

	//nolint:err113 // mismatch text is the diagnostic
	return fmt.Errorf("%s matches (but shouldn't): %s", FormatValue(actual), m.inner)
}

func (m notMatcher) String() string {
	return fmt.Sprintf("not(%s)", m.inner)
}

type orMatcher struct {
	first, second Matcher
}

func (m orMatcher) Match(actual any) error {
	if m.first.Match(actual) == nil {
		return nil
	}

	return m.second.Match(actual)
}

func (m orMatcher) String() string {
	return fmt.Sprintf("or(%s, %s)", m.first, m.second)
}

type orderedMatcher[T cmp.Ordered] struct {
	name     string
	bound    T
	relation string
	holds    func(actual, bound T) bool
}

func (m orderedMatcher[T]) Match(actual any) error {
	val, ok := actual.(T)
	if !ok {
		return fmt.Errorf("%w: %s expects %T, got %T", errTypeMismatch, m, m.bound, actual)
	}

	if m.holds(val, m.bound) {
		return nil
	}

	//nolint:err113 // mismatch text is the diagnostic
	return fmt.Errorf("%s is %s %s", FormatValue(val), m.relation, FormatValue(m.bound))
}

func (m orderedMatcher[T]) String() string {
	return fmt.Sprintf("%s(%s)", m.name, FormatValue(m.bound))
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
}

func (m satisfyMatcher[T]) Match(actual any) error {
	val, ok := actual.(T)
	if !ok {
		return fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, *new(T), actual)
	}

	if err := m.predicate(val); err != nil {
		return fmt.Errorf("value %s does not satisfy predicate: %w", FormatValue(actual), err)
	}

	return nil
}

func (m satisfyMatcher[T]) String() string {
	return fmt.Sprintf("satisfy(%T)", m.predicate)
}

// FormatValue renders a value the way diagnostics show it: strings quoted,
// nil as "nil", everything else with %v.
func FormatValue(value any) string {
	switch val := value.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// valuesEqual compares with go-cmp, looking into unexported fields as reflect.DeepEqual would.
func valuesEqual(a, b any) bool {
	return gocmp.Equal(a, b, gocmp.Exporter(func(reflect.Type) bool { return true }))
}
