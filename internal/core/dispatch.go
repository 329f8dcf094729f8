package core

import (
	"fmt"
	"strings"
)

// dispatch resolves one call and runs the consumed spec's action. The
// registry lock is released before the action runs, so closures may call
// other mocks of the same scenario.
func (s *Scenario) dispatch(mock *Mock, method string, args Args) any {
	s.t.Helper()

	act, failure := s.resolve(mock, method, args)
	if failure != nil {
		s.fail(failure)
	}

	s.log.Debug().Str("call", renderCall(mock.Label(), method, args)).Stringer("action", act.kind).
		Msg("call dispatched")

	return act.respond(args)
}

// resolve picks the spec for a call and consumes it. The first visible spec
// for the same mock and method that can still take calls wins; when every
// such spec is complete, the first of them reports the extra call. A Never
// spec is never skipped, so it rejects the call even with later specs
// pending. A spec whose matchers reject the call fails it, without looking
// further.
func (s *Scenario) resolve(mock *Mock, method string, args Args) (action, *Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		owner     entry
		candidate *CallSpec
		exhausted *CallSpec
		others    []*CallSpec
	)

	for i := range s.registry.Len() {
		en := s.registry.at(i)

		spec := en.eligible()
		if spec == nil || spec.method != method {
			continue
		}

		if spec.mock != mock {
			others = append(others, spec)

			continue
		}

		if spec.complete() && spec.cardinality.kind != cardinalityNever {
			if exhausted == nil {
				exhausted = spec
			}

			continue
		}

		owner, candidate = en, spec

		break
	}

	label := s.label(mock)

	if candidate == nil {
		candidate = exhausted
	}

	if candidate == nil {
		return action{}, s.unexpectedCall(label, method, args, others)
	}

	if index, err := candidate.matchArgs(args); err != nil {
		return action{}, s.argumentMismatch(label, method, args, candidate, index, err)
	}

	if candidate.complete() {
		return action{}, candidate.exceeded(label)
	}

	candidate.consumed++
	owner.afterConsume()

	return candidate.action, nil
}

func (s *Scenario) argumentMismatch(
	label, method string,
	args Args,
	spec *CallSpec,
	index int,
	err error,
) *Failure {
	var b strings.Builder

	b.WriteString(err.Error())

	if index >= 0 {
		fmt.Fprintf(&b, "\n  argument #%d of call `%s`", index, renderCall(label, method, args))
	} else {
		fmt.Fprintf(&b, "\n  call `%s`", renderCall(label, method, args))
	}

	fmt.Fprintf(&b, "\n  expectation `%s`", spec.signature(label))

	return &Failure{Kind: ArgumentMismatch, Message: b.String()}
}

func (s *Scenario) unexpectedCall(label, method string, args Args, others []*CallSpec) *Failure {
	var b strings.Builder

	fmt.Fprintf(&b, "unexpected call to `%s`", renderCall(label, method, args))

	if len(others) > 0 {
		b.WriteString("\n\nHere are active expectations for the same method on other mocks:\n")

		for _, spec := range others {
			fmt.Fprintf(&b, "\n  expectation `%s`", spec.signature(s.label(spec.mock)))
		}
	}

	return &Failure{Kind: UnexpectedCall, Message: b.String()}
}
