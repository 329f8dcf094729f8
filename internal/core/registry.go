package core

import "github.com/eapache/queue"

// Registry is a scenario's store of pending expectations, scanned in
// registration order, plus the mock id counter.
type Registry struct {
	entries *queue.Queue
	nextID  MockID
}

// Add appends an entry after every entry registered so far.
func (r *Registry) Add(e entry) {
	r.entries.Add(e)
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return r.entries.Length()
}

// Reset drops every entry. Mock ids keep counting.
func (r *Registry) Reset() {
	r.entries = queue.New()
}

// at returns entry i, counting from the oldest.
func (r *Registry) at(i int) entry {
	return r.entries.Get(i).(entry) //nolint:forcetypeassert // only Add writes to the queue
}

// allocate hands out the next mock id.
func (r *Registry) allocate() MockID {
	id := r.nextID
	r.nextID++

	return id
}

// NewRegistry returns an empty registry whose first mock id is 0.
func NewRegistry() *Registry {
	return &Registry{entries: queue.New()}
}

// entry is one registered item: a single call spec or a sequence.
type entry interface {
	// eligible returns the spec dispatch may consider, or nil.
	eligible() *CallSpec
	// afterConsume runs after the eligible spec accepted a call.
	afterConsume()
	// pending returns the spec that still needs calls, or nil.
	pending() *CallSpec
}
