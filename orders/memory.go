package orders

import (
	"context"
	"sort"
	"sync"

	"dorata/models"
)

// MemoryPersistence keeps orders in process memory. It backs tests and local
// development without a MongoDB instance, honoring the same contract.
type MemoryPersistence struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{orders: make(map[string]models.Order)}
}

func (m *MemoryPersistence) Insert(ctx context.Context, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.orders[order.OrderID]; exists {
		return ErrDuplicateOrder
	}
	m.orders[order.OrderID] = order
	return nil
}

func (m *MemoryPersistence) List(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryPersistence) UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	if order.Status != from {
		return models.Order{}, ErrBadTransition
	}
	order.Status = to
	m.orders[orderID] = order
	return order, nil
}
