package registry

import "context"

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	ListTemplatesFunc func(ctx context.Context) ([]string, error)
	ListPacksFunc     func(ctx context.Context) ([]string, error)
}

// ListTemplates implements Provider.
func (m *MockProvider) ListTemplates(ctx context.Context) ([]string, error) {
	if m.ListTemplatesFunc != nil {
		return m.ListTemplatesFunc(ctx)
	}
	return []string{"chat-ui", "embedded-tables"}, nil
}

// ListPacks implements Provider.
func (m *MockProvider) ListPacks(ctx context.Context) ([]string, error) {
	if m.ListPacksFunc != nil {
		return m.ListPacksFunc(ctx)
	}
	return []string{"rag-evaluator", "resume-screener"}, nil
}
