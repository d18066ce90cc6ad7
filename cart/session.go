package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sessions owns the in-memory carts, one per customer session. Carts are
// never persisted server-side; an idle session simply expires with whatever
// it held.
type Sessions struct {
	mu    sync.Mutex
	carts map[string]*Cart
	ttl   time.Duration
	stop  chan struct{}
}

const defaultTTL = 2 * time.Hour

func NewSessions() *Sessions {
	s := &Sessions{
		carts: make(map[string]*Cart),
		ttl:   defaultTTL,
		stop:  make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Get returns the cart for an existing session id, if any.
func (s *Sessions) Get(id string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	return c, ok
}

// GetOrCreate returns the session's cart, minting a new session when the id
// is empty or unknown. The returned id is the one the client must keep sending.
func (s *Sessions) GetOrCreate(id string) (string, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if c, ok := s.carts[id]; ok {
			return id, c
		}
	}
	id = uuid.NewString()
	c := New()
	s.carts[id] = c
	return id, c
}

// Drop discards a session and its cart.
func (s *Sessions) Drop(id string) {
	s.mu.Lock()
	delete(s.carts, id)
	s.mu.Unlock()
}

func (s *Sessions) Stop() {
	close(s.stop)
}

func (s *Sessions) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.ttl)
			s.mu.Lock()
			for id, c := range s.carts {
				if c.lastTouched().Before(cutoff) {
					delete(s.carts, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
