package core

import (
	"fmt"
	"strings"
)

// Call builds the expectation for one call of a mocked method whose result type is R.
// It is inert until registered with Scenario.Expect or Sequence.Expect.
type Call[R any] struct {
	spec *CallSpec
}

// DoAndReturn computes the result by calling fn with the actual arguments,
// once per consumed call. fn may call other mocks of the same scenario.
func (c *Call[R]) DoAndReturn(fn func(args Args) R) *Call[R] {
	c.configure().action = closureAction(fn)

	return c
}

// Never expects the method not to be called at all. The first call fails
// immediately, even when later expectations for the method are pending.
// Inside a Sequence the cursor steps over a Never call at once, so a later
// call to it fails as an unexpected call instead.
func (c *Call[R]) Never() *Call[R] {
	c.configure().cardinality = Never()

	return c
}

// Panic makes the call panic with value instead of returning.
func (c *Call[R]) Panic(value any) *Call[R] {
	c.configure().action = explicitFailure(value)

	return c
}

// Return makes the call return value. The value is handed out once, so it
// cannot be combined with Times(n) for n > 1; use ReturnClone for that.
func (c *Call[R]) Return(value R) *Call[R] {
	c.configure().action = fixedValue(value)

	return c
}

// ReturnClone makes every consumed call return value. Values implementing
// Clone() R are cloned per call.
func (c *Call[R]) ReturnClone(value R) *Call[R] {
	c.configure().action = clonedValue(value)

	return c
}

// ReturnDefault makes the call return the zero value of R.
// This is also what an unconfigured call does.
func (c *Call[R]) ReturnDefault() *Call[R] {
	c.configure().action = defaultValue[R]()

	return c
}

// Spec returns the underlying call spec.
func (c *Call[R]) Spec() *CallSpec {
	return c.spec
}

// String returns the expectation signature, e.g. "A#0.num(lt(2))".
func (c *Call[R]) String() string {
	return c.spec.String()
}

// Times expects exactly n calls.
func (c *Call[R]) Times(n int) *Call[R] {
	if n < 0 {
		panic(errorf("%s: Times(%d) needs a non-negative count", c.spec, n))
	}

	c.configure().cardinality = ExactlyN(n)

	return c
}

func (c *Call[R]) claim() []entry {
	return c.spec.claim()
}

func (c *Call[R]) configure() *CallSpec {
	if c.spec.registered {
		panic(errorf("%s is already registered; configure it before Expect", c.spec))
	}

	return c.spec
}

// CallSpec is one declared expected invocation: the owning mock, the method,
// one matcher per parameter, an action, a cardinality, and how often it has
// been consumed.
type CallSpec struct {
	mock        *Mock
	method      string
	matchers    []Matcher
	action      action
	cardinality Cardinality
	consumed    int
	registered  bool
}

// Cardinality returns how many calls the spec requires.
func (cs *CallSpec) Cardinality() Cardinality {
	return cs.cardinality
}

// Consumed returns how many calls the spec has accepted.
func (cs *CallSpec) Consumed() int {
	return cs.consumed
}

// Method returns the expected method name.
func (cs *CallSpec) Method() string {
	return cs.method
}

// Mock returns the mock the spec belongs to.
func (cs *CallSpec) Mock() *Mock {
	return cs.mock
}

// String returns the signature with the plain mock label.
func (cs *CallSpec) String() string {
	return cs.signature(cs.mock.Label())
}

func (cs *CallSpec) afterConsume() {}

// claim marks the spec registered, rejecting a second registration and a
// once-only value that would have to be handed out more than once.
func (cs *CallSpec) claim() []entry {
	if cs.registered {
		panic(errorf("%s is already registered", cs))
	}

	if cs.action.kind == actionFixedValue && cs.cardinality.Required() > 1 {
		panic(errorf("%s: Return hands its value out once; use ReturnClone with Times(%d)",
			cs, cs.cardinality.Required()))
	}

	cs.registered = true

	return []entry{cs}
}

// complete reports whether the spec has taken every call it may take.
// A Never spec is complete from the start.
func (cs *CallSpec) complete() bool {
	return cs.consumed >= cs.cardinality.Required()
}

func (cs *CallSpec) eligible() *CallSpec {
	return cs
}

// exceeded describes a call to a complete spec.
func (cs *CallSpec) exceeded(label string) *Failure {
	switch cs.cardinality.kind {
	case cardinalityNever:
		return newFailure(NeverViolated, "%s.%s should never be called", label, cs.method)
	case cardinalityExactlyN:
		return newFailure(CardinalityExceeded,
			"%s.%s was already called %d times of %d expected, extra call is unexpected",
			label, cs.method, cs.consumed, cs.cardinality.n)
	default:
		return newFailure(CardinalityExceeded, "%s.%s was already called earlier", label, cs.method)
	}
}

// matchArgs applies the matchers left to right and stops at the first mismatch,
// returning its index and error.
func (cs *CallSpec) matchArgs(args Args) (int, error) {
	if len(args) != len(cs.matchers) {
		//nolint:err113 // validation error with dynamic context
		return -1, fmt.Errorf("expected %d args, got %d", len(cs.matchers), len(args))
	}

	for i, m := range cs.matchers {
		if err := m.Match(args[i]); err != nil {
			return i, err
		}
	}

	return -1, nil
}

func (cs *CallSpec) pending() *CallSpec {
	if cs.complete() {
		return nil
	}

	return cs
}

func (cs *CallSpec) signature(label string) string {
	rendered := make([]string, len(cs.matchers))
	for i, m := range cs.matchers {
		rendered[i] = m.String()
	}

	return fmt.Sprintf("%s.%s(%s)", label, cs.method, strings.Join(rendered, ", "))
}

// unmet renders the verifier line for a spec that was not called often enough.
func (cs *CallSpec) unmet(label string) string {
	if cs.cardinality.kind == cardinalityExactlyN {
		return fmt.Sprintf("`%s must be called %d times, called %d times`",
			cs.signature(label), cs.cardinality.n, cs.consumed)
	}

	return fmt.Sprintf("`%s`", cs.signature(label))
}

// Expectation is anything Scenario.Expect and Sequence.Expect accept:
// a *Call or a *Sequence.
type Expectation interface {
	claim() []entry
}

// NewCall starts the expectation for one call of method on mock. There is
// one arg per declared parameter: a Matcher, or a bare value compared with Eq.
// Generated builders call this, one constructor per interface method.
func NewCall[R any](mock *Mock, method string, args ...any) *Call[R] {
	if mock == nil {
		panic(errorf("NewCall(%q) needs a mock", method))
	}

	matchers := make([]Matcher, len(args))
	for i, arg := range args {
		matchers[i] = MatcherFor(arg)
	}

	return &Call[R]{spec: &CallSpec{
		mock:        mock,
		method:      method,
		matchers:    matchers,
		action:      defaultValue[R](),
		cardinality: ExactlyOnce(),
	}}
}

// renderCall renders an actual call, e.g. "A#0.bar(12)".
func renderCall(label, method string, args Args) string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = FormatValue(arg)
	}

	return fmt.Sprintf("%s.%s(%s)", label, method, strings.Join(rendered, ", "))
}
