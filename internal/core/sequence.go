package core

// Sequence is an ordered group of expectations. Only the spec at the cursor
// can be matched; it advances once that spec has taken all its calls.
type Sequence struct {
	specs      []*CallSpec
	cursor     int
	registered bool
}

// Done reports whether every spec in the sequence has been satisfied.
func (q *Sequence) Done() bool {
	return q.cursor >= len(q.specs)
}

// Expect appends an expectation to the sequence. A nested sequence
// contributes its specs in its own order.
func (q *Sequence) Expect(e Expectation) {
	for _, claimed := range e.claim() {
		switch exp := claimed.(type) {
		case *CallSpec:
			q.specs = append(q.specs, exp)
		case *Sequence:
			q.specs = append(q.specs, exp.specs[exp.cursor:]...)
		}
	}

	q.advance()
}

// Len returns the number of specs in the sequence.
func (q *Sequence) Len() int {
	return len(q.specs)
}

// Position returns the cursor: the index of the only spec that can match.
func (q *Sequence) Position() int {
	return q.cursor
}

// advance moves the cursor past every spec that needs no more calls.
func (q *Sequence) advance() {
	for q.cursor < len(q.specs) && q.specs[q.cursor].complete() {
		q.cursor++
	}
}

func (q *Sequence) afterConsume() {
	q.advance()
}

func (q *Sequence) claim() []entry {
	if q.registered {
		panic(errorf("sequence is already registered"))
	}

	q.registered = true

	return []entry{q}
}

func (q *Sequence) eligible() *CallSpec {
	if q.Done() {
		return nil
	}

	return q.specs[q.cursor]
}

func (q *Sequence) pending() *CallSpec {
	return q.eligible()
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}
