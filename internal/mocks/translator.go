package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTranslator implements pycommander.Translator for testing across packages
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)

	// Handle function return types (for tests that inspect the prompt)
	if fn, ok := args.Get(0).(func(context.Context, string) string); ok {
		return fn(ctx, prompt), args.Error(1)
	}
	return args.String(0), args.Error(1)
}
