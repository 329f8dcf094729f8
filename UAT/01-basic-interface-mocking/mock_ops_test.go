package basic_test

import (
	"github.com/toejough/impmock"
	basic "github.com/toejough/impmock/UAT/01-basic-interface-mocking"
)

// OpsMock is a hand-written proxy for basic.Ops. It forwards every call to
// the engine; Expect builds the matching expectations.
type OpsMock struct {
	mock   *impmock.Mock
	Expect OpsExpect
}

// MockOps creates a new mock for the Ops interface in scenario.
func MockOps(scenario *impmock.Scenario) *OpsMock {
	mock := scenario.NewMock("Ops")

	return &OpsMock{mock: mock, Expect: OpsExpect{mock: mock}}
}

// MockNamedOps is MockOps with a label of the caller's choosing.
func MockNamedOps(scenario *impmock.Scenario, name string) *OpsMock {
	mock := scenario.NewNamedMock("Ops", name)

	return &OpsMock{mock: mock, Expect: OpsExpect{mock: mock}}
}

// Add implements basic.Ops.
func (m *OpsMock) Add(a, b int) int {
	return impmock.Invoke[int](m.mock, "Add", a, b)
}

func (m *OpsMock) Finish() bool {
	return impmock.Invoke[bool](m.mock, "Finish")
}

func (m *OpsMock) Log(message string) {
	m.mock.Dispatch("Log", message)
}

func (m *OpsMock) Notify(message string, ids ...int) bool {
	return impmock.Invoke[bool](m.mock, "Notify", message, ids)
}

func (m *OpsMock) Store(key string, value any) (int, error) {
	result := impmock.Invoke[StoreResult](m.mock, "Store", key, value)

	return result.N, result.Err
}

// OpsExpect has one builder per Ops method.
type OpsExpect struct {
	mock *impmock.Mock
}

func (e OpsExpect) Add(a, b any) *impmock.Call[int] {
	return impmock.NewCall[int](e.mock, "Add", a, b)
}

func (e OpsExpect) Finish() *impmock.Call[bool] {
	return impmock.NewCall[bool](e.mock, "Finish")
}

func (e OpsExpect) Log(message any) *impmock.Call[struct{}] {
	return impmock.NewCall[struct{}](e.mock, "Log", message)
}

// Notify takes the variadic ids as one argument, matched as a slice.
func (e OpsExpect) Notify(message, ids any) *impmock.Call[bool] {
	return impmock.NewCall[bool](e.mock, "Notify", message, ids)
}

func (e OpsExpect) Store(key, value any) *impmock.Call[StoreResult] {
	return impmock.NewCall[StoreResult](e.mock, "Store", key, value)
}

// StoreResult carries Store's two results through one action.
type StoreResult struct {
	N   int
	Err error
}

var _ basic.Ops = (*OpsMock)(nil)
