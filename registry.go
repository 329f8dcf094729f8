package impmock

import "github.com/toejough/impmock/internal/core"

// ScenarioFor returns the Scenario for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Scenario, so
// mock constructors that take a *testing.T share one registry and one
// mock id counter.
func ScenarioFor(t TestReporter, options ...Option) *Scenario {
	return core.ScenarioFor(t, options...)
}

// Checkpoint verifies the expectations registered under t so far and clears
// them on success.
func Checkpoint(t TestReporter) {
	t.Helper()

	core.ScenarioFor(t).Checkpoint()
}
