package core

import "fmt"

// Invoke dispatches a call and returns its result as an R. It is the checked
// form of Mock.Dispatch that generated proxies use for methods with a result.
func Invoke[R any](mock *Mock, method string, args ...any) R {
	result := mock.Dispatch(method, args...)
	if result == nil {
		var zero R

		return zero
	}

	val, ok := result.(R)
	if !ok {
		panic(errorf("%s.%s produced %T, but the proxy expects %T", mock.Label(), method, result, *new(R)))
	}

	return val
}

// Mock is the engine-side handle of one stand-in object. Proxies hold one and
// forward every method call through Dispatch; builders pass it to NewCall.
type Mock struct {
	scenario *Scenario
	id       MockID
	iface    string
	name     string
}

// Dispatch resolves one call against the scenario's expectations and returns
// the consumed expectation's result. Failures are reported to the test and
// do not return.
func (m *Mock) Dispatch(method string, args ...any) any {
	m.scenario.t.Helper()

	return m.scenario.dispatch(m, method, args)
}

// ID returns the mock's id, unique within its scenario.
func (m *Mock) ID() MockID {
	return m.id
}

// Interface returns the name of the mocked interface.
func (m *Mock) Interface() string {
	return m.iface
}

// Label returns the name diagnostics use: the user-supplied name, or "<Interface>#<id>".
func (m *Mock) Label() string {
	if m.name != "" {
		return m.name
	}

	return fmt.Sprintf("%s#%d", m.iface, m.id)
}

// Scenario returns the scenario the mock belongs to.
func (m *Mock) Scenario() *Scenario {
	return m.scenario
}

// MockID identifies a mock within its scenario.
type MockID int
