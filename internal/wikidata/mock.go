package wikidata

import "context"

// MockClient is a mock implementation of the DumpClient interface for testing.
type MockClient struct {
	FetchDumpFunc func(ctx context.Context) ([]Statement, error)

	FetchDumpCalls int
}

var _ DumpClient = (*MockClient)(nil)

func (m *MockClient) FetchDump(ctx context.Context) ([]Statement, error) {
	m.FetchDumpCalls++
	if m.FetchDumpFunc != nil {
		return m.FetchDumpFunc(ctx)
	}
	return nil, nil
}
