package core

import (
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Option configures a Scenario.
type Option func(*Scenario) *Scenario

// Scenario owns the mocks and expectations of one test. Create mocks with
// NewMock, register expectations with Expect, and let Finish (run
// automatically when the reporter supports Cleanup) verify that every
// expectation was met.
type Scenario struct {
	t        TestReporter
	log      zerolog.Logger
	emphasis *color.Color

	mu         sync.Mutex // Protects registry, finished, and suppressed
	registry   *Registry
	finished   bool
	suppressed bool
}

// Checkpoint verifies every expectation registered so far. On success the
// registry is cleared, so the rest of the test can declare fresh expectations.
// On failure the test fails with the unmet expectations.
func (s *Scenario) Checkpoint() {
	s.t.Helper()

	if failure := s.checkpoint(); failure != nil {
		s.fail(failure)
	}

	s.log.Debug().Msg("checkpoint passed")
}

// Expect registers a call or a sequence, after everything registered before.
func (s *Scenario) Expect(e Expectation) {
	claimed := e.claim()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, en := range claimed {
		s.registry.Add(en)

		if spec := en.eligible(); spec != nil {
			s.log.Debug().Str("expectation", spec.String()).Stringer("cardinality", spec.cardinality).
				Msg("expectation registered")
		}
	}
}

// Finish verifies the remaining expectations and fails the test if any is
// unmet. It runs once; later calls do nothing. If the test is already failing
// the check is skipped, so the original failure is the one reported.
func (s *Scenario) Finish() {
	s.t.Helper()

	if !s.markFinished() {
		return
	}

	if fr, ok := s.t.(failureReporter); ok && fr.Failed() {
		s.suppress()

		return
	}

	if failure := s.verify(); failure != nil {
		s.fail(failure)
	}
}

// NewMock allocates the next mock id for a stand-in of iface.
// Its label is "<iface>#<id>".
func (s *Scenario) NewMock(iface string) *Mock {
	return s.newMock(iface, "")
}

// NewNamedMock is NewMock with a label of the caller's choosing.
func (s *Scenario) NewNamedMock(iface, name string) *Mock {
	return s.newMock(iface, name)
}

// Suppressed reports whether teardown skipped verification because a failure
// was already propagating.
func (s *Scenario) Suppressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.suppressed
}

// Verify returns the unmet expectations as a CardinalityUnmet *Failure, or nil.
// It neither reports nor clears anything.
func (s *Scenario) Verify() error {
	if failure := s.verify(); failure != nil {
		return failure
	}

	return nil
}

// abandon ends the scenario without verifying, because its scope is unwinding.
func (s *Scenario) abandon() {
	if s.markFinished() {
		s.suppress()
	}
}

func (s *Scenario) checkpoint() *Failure {
	s.mu.Lock()
	defer s.mu.Unlock()

	if failure := s.verifyLocked(); failure != nil {
		return failure
	}

	s.registry.Reset()

	return nil
}

// fail reports a failure to the test. Fatalf is expected not to return; if it
// does, the failure is raised as a panic so the proxy never returns a value.
func (s *Scenario) fail(failure *Failure) {
	s.t.Helper()

	s.log.Debug().Stringer("kind", failure.Kind).Msg(failure.Message)
	s.t.Fatalf("%s", failure.Message)

	panic(failure)
}

// label renders a mock label for diagnostics, emphasized if configured.
func (s *Scenario) label(m *Mock) string {
	if s.emphasis == nil {
		return m.Label()
	}

	return s.emphasis.Sprint(m.Label())
}

func (s *Scenario) markFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		return false
	}

	s.finished = true

	return true
}

func (s *Scenario) newMock(iface, name string) *Mock {
	s.mu.Lock()
	id := s.registry.allocate()
	s.mu.Unlock()

	mock := &Mock{scenario: s, id: id, iface: iface, name: name}
	s.log.Debug().Str("mock", mock.Label()).Msg("mock created")

	return mock
}

func (s *Scenario) suppress() {
	s.mu.Lock()
	s.suppressed = true
	s.mu.Unlock()

	s.log.Debug().Stringer("kind", DoubleFailureSuppressed).
		Msg("verification skipped: a failure is already propagating")
}

// TestReporter is the minimal interface impmock needs from test frameworks.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// NewScenario creates a scenario reporting to t. If t supports Cleanup (like
// *testing.T), Finish is registered to run when the test ends.
func NewScenario(t TestReporter, options ...Option) *Scenario {
	scenario := &Scenario{
		t:        t,
		log:      zerolog.Nop(),
		registry: NewRegistry(),
	}

	for _, o := range options {
		scenario = o(scenario)
	}

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(scenario.Finish)
	}

	return scenario
}

// Run creates a scenario, passes it to body, and verifies it when body
// returns. If body panics or exits the goroutine (t.Fatal), verification is
// skipped and the original failure keeps propagating.
func Run(t TestReporter, body func(*Scenario), options ...Option) {
	t.Helper()

	scenario := NewScenario(t, options...)
	unwinding := true

	defer func() {
		if unwinding {
			scenario.abandon()

			return
		}

		scenario.Finish()
	}()

	body(scenario)

	unwinding = false
}

// WithEmphasis renders mock labels in bold terminal text.
func WithEmphasis() Option {
	return func(s *Scenario) *Scenario {
		emphasis := color.New(color.Bold)
		emphasis.EnableColor()
		s.emphasis = emphasis

		return s
	}
}

// WithLogger traces mock creation, registration, dispatch and failures to logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scenario) *Scenario {
		s.log = logger

		return s
	}
}

// WithTestLogger traces to the test's log at debug level.
func WithTestLogger(t zerolog.TestingLog) Option {
	return WithLogger(zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel))
}

// cleanupRegistrar is the interface needed for registering cleanup functions.
// This is satisfied by *testing.T and *testing.B.
type cleanupRegistrar interface {
	Cleanup(cleanupFunc func())
}

// failureReporter is satisfied by *testing.T, which is marked failed before
// cleanups run, both after t.Fatal and after a panic.
type failureReporter interface {
	Failed() bool
}
