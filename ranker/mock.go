package ranker

import "context"

// MockGenerator is a lightweight in-memory TextGenerator useful for
// tests and examples. It returns a canned response (or error) and
// records every prompt it receives.
type MockGenerator struct {
	Response string
	Err      error
	Prompts  []string
}

// GenerateText implements TextGenerator.
func (m *MockGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Info implements TextGenerator.
func (m *MockGenerator) Info() Info { return Info{Name: "mock", Provider: "mock"} }
