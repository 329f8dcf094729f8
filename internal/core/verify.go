package core

import "strings"

// verify collects every unmet expectation into one CardinalityUnmet failure.
func (s *Scenario) verify() *Failure {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.verifyLocked()
}

// verifyLocked lists unmet specs in registration order, one line each. An
// unfinished sequence contributes the spec at its cursor. Never specs are
// met by not being called, so they never appear.
func (s *Scenario) verifyLocked() *Failure {
	var lines []string

	for i := range s.registry.Len() {
		if spec := s.registry.at(i).pending(); spec != nil {
			lines = append(lines, spec.unmet(s.label(spec.mock)))
		}
	}

	if len(lines) == 0 {
		return nil
	}

	var b strings.Builder

	b.WriteString("Some expectations are not satisfied:\n")

	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return &Failure{Kind: CardinalityUnmet, Message: b.String()}
}
