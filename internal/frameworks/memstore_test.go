package frameworks_test

import (
	"context"
	"sync"

	"github.com/Kepler-Interactive/CompAI/internal/frameworks"
)

// memStore is an in-memory frameworks.RouteStore honoring the count/createMany contract.
type memStore struct {
	mu      sync.Mutex
	records []frameworks.Framework

	countErr  error
	createErr error
	panicWith any

	countCalls  int
	createCalls int
}

func (m *memStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countCalls++
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.records)), nil
}

func (m *memStore) CreateMany(ctx context.Context, records []frameworks.Framework) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.records = append(m.records, records...)
	return int64(len(records)), nil
}

func (m *memStore) ListVisible(ctx context.Context) ([]frameworks.Framework, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return nil, m.countErr
	}
	var out []frameworks.Framework
	for _, r := range m.records {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) snapshot() []frameworks.Framework {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]frameworks.Framework, len(m.records))
	copy(out, m.records)
	return out
}
