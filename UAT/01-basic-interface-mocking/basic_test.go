package basic_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive
	"github.com/toejough/impmock"
	basic "github.com/toejough/impmock/UAT/01-basic-interface-mocking"
)

// TestBasicMocking walks PerformOps through every Ops method.
func TestBasicMocking(t *testing.T) {
	t.Parallel()

	scenario := impmock.NewScenario(t)
	ops := MockOps(scenario)

	// 1. Add returns a single value.
	scenario.Expect(ops.Expect.Add(1, 2).Return(3))

	// 2. Store returns two values, bundled into one result.
	scenario.Expect(ops.Expect.Store("sum", 3).Return(StoreResult{N: 100}))

	// 3. Log is void; an unconfigured call just returns.
	scenario.Expect(ops.Expect.Log("action performed"))

	// 4. Notify is variadic; the ids arrive as one slice.
	scenario.Expect(ops.Expect.Notify("alert", []int{1, 2, 3}).Return(true))

	// 5. Finish takes no arguments.
	scenario.Expect(ops.Expect.Finish().Return(true))

	NewWithT(t).Expect(basic.PerformOps(ops)).To(Succeed())
}

// TestBasicMocking_ErrorResult shows a dependency error reaching the caller.
func TestBasicMocking_ErrorResult(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	errFull := errors.New("disk full")

	impmock.Run(t, func(s *impmock.Scenario) {
		ops := MockOps(s)

		s.Expect(ops.Expect.Add(impmock.Any, impmock.Any).Return(3))
		s.Expect(ops.Expect.Store("sum", impmock.Any).Return(StoreResult{Err: errFull}))

		g.Expect(basic.PerformOps(ops)).To(MatchError(errFull))
	})
}

// TestBasicMocking_Closure computes results from the actual arguments.
func TestBasicMocking_Closure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scenario := impmock.NewScenario(t)
	ops := MockOps(scenario)

	scenario.Expect(ops.Expect.Add(impmock.Any, impmock.Any).
		DoAndReturn(func(args impmock.Args) int {
			return impmock.ArgAt[int](args, 0) + impmock.ArgAt[int](args, 1)
		}).
		Times(2))

	g.Expect(ops.Add(2, 3)).To(Equal(5))
	g.Expect(ops.Add(10, -4)).To(Equal(6))
}

// TestBasicMocking_Sequence enforces call order.
func TestBasicMocking_Sequence(t *testing.T) {
	t.Parallel()

	scenario := impmock.NewScenario(t)
	ops := MockOps(scenario)

	seq := impmock.NewSequence()
	seq.Expect(ops.Expect.Add(1, 2).Return(3))
	seq.Expect(ops.Expect.Store("sum", 3).Return(StoreResult{N: 1}))
	seq.Expect(ops.Expect.Log("action performed"))
	seq.Expect(ops.Expect.Notify("alert", impmock.Any).Return(false))
	seq.Expect(ops.Expect.Log("nobody listening"))
	seq.Expect(ops.Expect.Finish().Return(true))
	scenario.Expect(seq)

	NewWithT(t).Expect(basic.PerformOps(ops)).To(Succeed())
}

// TestBasicMocking_Checkpoint verifies in stages.
func TestBasicMocking_Checkpoint(t *testing.T) {
	t.Parallel()

	scenario := impmock.NewScenario(t)
	ops := MockOps(scenario)

	scenario.Expect(ops.Expect.Log("first"))
	ops.Log("first")
	scenario.Checkpoint()

	scenario.Expect(ops.Expect.Log("second"))
	ops.Log("second")
}

// TestBasicMocking_Failures checks the messages a failing test reports.
func TestBasicMocking_Failures(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		setup func(s *impmock.Scenario, ops *OpsMock)
		act   func(ops *OpsMock)
		want  string
	}{
		{
			name:  "unexpected call",
			setup: func(s *impmock.Scenario, ops *OpsMock) { s.Expect(ops.Expect.Log("x")) },
			act:   func(ops *OpsMock) { ops.Finish() },
			want:  "unexpected call to `Ops#0.Finish()`",
		},
		{
			name:  "argument mismatch",
			setup: func(s *impmock.Scenario, ops *OpsMock) { s.Expect(ops.Expect.Add(impmock.Lt(3), 1)) },
			act:   func(ops *OpsMock) { ops.Add(4, 1) },
			want: "4 is not less than 3\n" +
				"  argument #0 of call `Ops#0.Add(4, 1)`\n" +
				"  expectation `Ops#0.Add(lt(3), 1)`",
		},
		{
			name:  "called twice",
			setup: func(s *impmock.Scenario, ops *OpsMock) { s.Expect(ops.Expect.Log("x")) },
			act: func(ops *OpsMock) {
				ops.Log("x")
				ops.Log("x")
			},
			want: "Ops#0.Log was already called earlier",
		},
		{
			name:  "never",
			setup: func(s *impmock.Scenario, ops *OpsMock) { s.Expect(ops.Expect.Finish().Never()) },
			act:   func(ops *OpsMock) { ops.Finish() },
			want:  "Ops#0.Finish should never be called",
		},
		{
			name: "too many",
			setup: func(s *impmock.Scenario, ops *OpsMock) {
				s.Expect(ops.Expect.Add(impmock.Any, impmock.Any).ReturnClone(1).Times(2))
			},
			act: func(ops *OpsMock) {
				ops.Add(1, 1)
				ops.Add(1, 1)
				ops.Add(1, 1)
			},
			want: "Ops#0.Add was already called 2 times of 2 expected, extra call is unexpected",
		},
		{
			name:  "too few",
			setup: func(s *impmock.Scenario, ops *OpsMock) { s.Expect(ops.Expect.Finish().ReturnClone(true).Times(2)) },
			act:   func(ops *OpsMock) { ops.Finish() },
			want:  "Some expectations are not satisfied:\n`Ops#0.Finish() must be called 2 times, called 1 times`\n",
		},
		{
			name:  "unmet",
			setup: func(s *impmock.Scenario, ops *OpsMock) { s.Expect(ops.Expect.Log(impmock.Any)) },
			act:   func(*OpsMock) {},
			want:  "Some expectations are not satisfied:\n`Ops#0.Log(_)`\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reporter := &recordingT{}

			func() {
				defer func() { _ = recover() }()

				impmock.Run(reporter, func(s *impmock.Scenario) {
					ops := MockOps(s)
					tc.setup(s, ops)
					tc.act(ops)
				})
			}()

			NewWithT(t).Expect(reporter.messages).To(Equal([]string{tc.want}))
		})
	}
}

// TestBasicMocking_NamedMock uses the caller's label in diagnostics.
func TestBasicMocking_NamedMock(t *testing.T) {
	t.Parallel()

	reporter := &recordingT{}
	scenario := impmock.NewScenario(reporter)
	ops := MockNamedOps(scenario, "amock")

	scenario.Expect(ops.Expect.Log("x"))

	NewWithT(t).Expect(func() { ops.Finish() }).To(Panic())
	NewWithT(t).Expect(reporter.messages).To(Equal([]string{"unexpected call to `amock.Finish()`"}))
}

// recordingT records failures; its Fatalf returns, so the scenario panics
// on its behalf.
type recordingT struct {
	messages []string
}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func (r *recordingT) Helper() {}
