package core

import "sync"

// ScenarioFor returns the Scenario for the given test, creating one if needed.
// Multiple calls with the same TestReporter return the same Scenario, so
// proxies built from a *testing.T share one expectation registry and one
// mock id counter, and Checkpoint(t) or the cleanup-time verification see
// every expectation the test registered through any of them.
//
// If the TestReporter supports Cleanup (like *testing.T), the Scenario is
// removed from the lookup table when the test completes. Options only apply
// when the Scenario is created.
func ScenarioFor(t TestReporter, options ...Option) *Scenario {
	scenariosMu.Lock()
	defer scenariosMu.Unlock()

	if scenario, ok := scenarios[t]; ok {
		return scenario
	}

	scenario := NewScenario(t, options...)
	scenarios[t] = scenario

	if cr, ok := t.(cleanupRegistrar); ok {
		cr.Cleanup(func() {
			scenariosMu.Lock()
			delete(scenarios, t)
			scenariosMu.Unlock()
		})
	}

	return scenario
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Package-level lookup is intentional for test coordination
	scenarios = make(map[TestReporter]*Scenario)
	//nolint:gochecknoglobals // Mutex for scenarios
	scenariosMu sync.Mutex
)
