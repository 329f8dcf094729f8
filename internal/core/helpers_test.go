package core_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/toejough/impmock/internal/core"
)

// unexported variables.
var (
	errFatal = errors.New("fakeReporter: Fatalf")
)

// fakeReporter stands in for *testing.T. Fatalf records the message and
// panics with errFatal, like t.Fatalf it does not return.
type fakeReporter struct {
	mu       sync.Mutex
	failed   bool
	messages []string
	cleanups []func()
}

func (r *fakeReporter) Cleanup(cleanupFunc func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cleanups = append(r.cleanups, cleanupFunc)
}

func (r *fakeReporter) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.failed
}

func (r *fakeReporter) Fatalf(format string, args ...any) {
	r.mu.Lock()
	r.failed = true
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
	r.mu.Unlock()

	panic(errFatal)
}

func (r *fakeReporter) Helper() {}

// finish runs the registered cleanups the way the testing package does,
// last registered first, and returns the message of a failing cleanup.
func (r *fakeReporter) finish() string {
	r.mu.Lock()
	cleanups := r.cleanups
	r.cleanups = nil
	r.mu.Unlock()

	msg := ""

	for i := len(cleanups) - 1; i >= 0; i-- {
		if got := failureOf(r, cleanups[i]); got != "" {
			msg = got
		}
	}

	return msg
}

func (r *fakeReporter) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.messages) == 0 {
		return ""
	}

	return r.messages[len(r.messages)-1]
}

// mockA is a hand-written proxy for
//
//	type A interface {
//	    foo()
//	    bar(arg int)
//	    baz() int
//	    ask(arg int) int
//	    consume_arg(arg string) string
//	    consume_rc(arg *resource)
//	}
//
// following the dispatch protocol (proxy methods) and the builder protocol
// (one *Call constructor per method).
type mockA struct {
	mock *core.Mock
}

func (m *mockA) ask(arg int) int {
	return core.Invoke[int](m.mock, "ask", arg)
}

func (m *mockA) askCall(arg any) *core.Call[int] {
	return core.NewCall[int](m.mock, "ask", arg)
}

func (m *mockA) bar(arg int) {
	m.mock.Dispatch("bar", arg)
}

func (m *mockA) barCall(arg any) *core.Call[struct{}] {
	return core.NewCall[struct{}](m.mock, "bar", arg)
}

func (m *mockA) baz() int {
	return core.Invoke[int](m.mock, "baz")
}

func (m *mockA) bazCall() *core.Call[int] {
	return core.NewCall[int](m.mock, "baz")
}

func (m *mockA) consumeArg(arg string) string {
	return core.Invoke[string](m.mock, "consume_arg", arg)
}

func (m *mockA) consumeArgCall(arg any) *core.Call[string] {
	return core.NewCall[string](m.mock, "consume_arg", arg)
}

func (m *mockA) consumeRC(arg *resource) {
	m.mock.Dispatch("consume_rc", arg)
}

func (m *mockA) foo() {
	m.mock.Dispatch("foo")
}

func (m *mockA) fooCall() *core.Call[struct{}] {
	return core.NewCall[struct{}](m.mock, "foo")
}

// plainReporter has no Cleanup or Failed, and its Fatalf returns.
type plainReporter struct {
	messages []string
}

func (r *plainReporter) Fatalf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *plainReporter) Helper() {}

// resource is an argument whose lifetime tests observe with weak pointers.
type resource struct {
	name string
	data []byte
}

// failureOf runs fn and returns the message it reported through Fatalf, or
// "" if fn returned normally. Other panics propagate.
func failureOf(r *fakeReporter, fn func()) (msg string) {
	defer func() {
		if rec := recover(); rec != nil {
			if !errors.Is(asError(rec), errFatal) {
				panic(rec)
			}

			msg = r.last()
		}
	}()

	fn()

	return ""
}

func asError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}

	return nil
}

func newMockA(scenario *core.Scenario) *mockA {
	return &mockA{mock: scenario.NewMock("A")}
}

func newNamedMockA(scenario *core.Scenario, name string) *mockA {
	return &mockA{mock: scenario.NewNamedMock("A", name)}
}

// newScenario returns a scenario over a fresh fakeReporter.
func newScenario(t *testing.T, options ...core.Option) (*core.Scenario, *fakeReporter) {
	t.Helper()

	reporter := &fakeReporter{}

	return core.NewScenario(reporter, options...), reporter
}

// panicValue runs fn and returns what it panicked with, or nil.
func panicValue(fn func()) (value any) {
	defer func() {
		value = recover()
	}()

	fn()

	return nil
}
