package core

import "fmt"

// Cardinality is how many times a call spec must be consumed.
type Cardinality struct {
	kind cardinalityKind
	n    int
}

// Required returns the number of calls that satisfy the cardinality.
func (c Cardinality) Required() int {
	switch c.kind {
	case cardinalityExactlyN:
		return c.n
	case cardinalityNever:
		return 0
	default:
		return 1
	}
}

// String describes the cardinality.
func (c Cardinality) String() string {
	switch c.kind {
	case cardinalityExactlyN:
		return fmt.Sprintf("exactly %d times", c.n)
	case cardinalityNever:
		return "never"
	default:
		return "exactly once"
	}
}

// ExactlyN requires exactly n calls.
func ExactlyN(n int) Cardinality {
	return Cardinality{kind: cardinalityExactlyN, n: n}
}

// ExactlyOnce requires exactly one call. It is the default.
func ExactlyOnce() Cardinality {
	return Cardinality{kind: cardinalityExactlyOnce}
}

// Never forbids calls. Unlike ExactlyN(0), the first call fails as a
// NeverViolated rather than an exceeded count.
func Never() Cardinality {
	return Cardinality{kind: cardinalityNever}
}

type cardinalityKind int

const (
	cardinalityExactlyOnce cardinalityKind = iota
	cardinalityExactlyN
	cardinalityNever
)
