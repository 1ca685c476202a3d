package gitctx

import "context"

// MockSource is a test double for Source.
// It allows tests to provide predefined change context without needing
// a real Git repository.
type MockSource struct {
	Context ChangeContext
	Error   error

	// LastFrom and LastTo record the most recent Gather arguments.
	LastFrom string
	LastTo   string
}

// Gather returns the predefined change context or error.
func (m *MockSource) Gather(_ context.Context, from, to string) (ChangeContext, error) {
	m.LastFrom = from
	m.LastTo = to
	return m.Context, m.Error
}

// Compile-time interface conformance check.
var _ Source = (*MockSource)(nil)
