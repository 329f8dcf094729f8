package matching_test

import (
	"github.com/toejough/impmock"
	matching "github.com/toejough/impmock/UAT/05-advanced-matching"
)

// ComplexServiceMock is a hand-written proxy for matching.ComplexService.
type ComplexServiceMock struct {
	mock *impmock.Mock
}

func NewComplexServiceMock(scenario *impmock.Scenario) *ComplexServiceMock {
	return &ComplexServiceMock{mock: scenario.NewMock("ComplexService")}
}

func (m *ComplexServiceMock) Process(d matching.Data) bool {
	return impmock.Invoke[bool](m.mock, "Process", d)
}

// ExpectProcess builds an expectation for Process.
func (m *ComplexServiceMock) ExpectProcess(d any) *impmock.Call[bool] {
	return impmock.NewCall[bool](m.mock, "Process", d)
}

var _ matching.ComplexService = (*ComplexServiceMock)(nil)
