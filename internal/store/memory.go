package store

import (
	"context"
	"sync"
	"time"

	"github.com/rezonia/invoice-generator/internal/model"
)

// Memory is an in-memory Store, used in tests and as the default archive
// when no data file is configured.
type Memory struct {
	mu       sync.RWMutex
	invoices map[string]*model.Invoice
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		invoices: make(map[string]*model.Invoice),
	}
}

func (m *Memory) Get(ctx context.Context, id string) (*model.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inv, ok := m.invoices[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (m *Memory) List(ctx context.Context) ([]*model.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*model.Invoice, 0, len(m.invoices))
	for _, inv := range m.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (m *Memory) Save(ctx context.Context, inv *model.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *inv
	cp.UpdatedAt = time.Now().UTC()
	m.invoices[cp.ID] = &cp
	return nil
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.invoices[id]; !ok {
		return ErrNotFound
	}
	delete(m.invoices, id)
	return nil
}
