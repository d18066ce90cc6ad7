package orders

import (
	"context"
	"sync"

	"dorata/models"
)

// Persistence is the narrow contract the store needs from its backend:
// insert a row, list rows newest-first, and apply one status transition
// atomically. UpdateStatus must only succeed when the order currently holds
// `from`, so racing admins cannot regress an order.
type Persistence interface {
	Insert(ctx context.Context, order models.Order) error
	List(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus) (models.Order, error)
}

// Store owns the order lifecycle. Customers only ever append; admins only ever
// transition status; both paths fan the resulting change out to every
// subscriber (one per open admin view, plus the cross-instance relay).
type Store struct {
	db Persistence

	mu      sync.Mutex
	subs    map[int]func(models.OrderEvent)
	nextSub int
}

func NewStore(db Persistence) *Store {
	return &Store{
		db:   db,
		subs: make(map[int]func(models.OrderEvent)),
	}
}

// Append durably persists a new pending order and notifies subscribers.
func (s *Store) Append(ctx context.Context, order models.Order) error {
	if err := s.db.Insert(ctx, order); err != nil {
		return err
	}
	s.publish(models.OrderEvent{Action: models.EventCreated, Order: order})
	return nil
}

// SetStatus applies one forward transition. The store, not the caller,
// decides whether the move is legal: only pending→ready and ready→completed
// exist, so anything else is ErrBadTransition and completed orders are final.
func (s *Store) SetStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error) {
	from, ok := status.Prev()
	if !ok {
		return models.Order{}, ErrBadTransition
	}

	order, err := s.db.UpdateStatus(ctx, orderID, from, status)
	if err != nil {
		return models.Order{}, err
	}
	s.publish(models.OrderEvent{Action: models.EventStatus, Order: order})
	return order, nil
}

// List returns all orders newest-first by creation time.
func (s *Store) List(ctx context.Context) ([]models.Order, error) {
	return s.db.List(ctx)
}

// Subscribe registers a listener for every append and status change. The
// returned function unsubscribes; calling it twice is harmless.
func (s *Store) Subscribe(fn func(models.OrderEvent)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(ev models.OrderEvent) {
	s.mu.Lock()
	fns := make([]func(models.OrderEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
