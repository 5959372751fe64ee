// internal/store/memory.go
//
// In-memory round store.
// Rounds are not persisted; they live until the process exits or they
// are evicted after sitting idle longer than the configured TTL.
//
// Characteristics:
//   - Stores *game.Round objects keyed by ID.
//   - Update runs a function with exclusive access to one round, so each
//     submission or restart finishes before the next one on that round starts.
//   - Get returns a copy; callers never hold the stored pointer.

package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned for unknown or evicted round IDs.
var ErrNotFound = errors.New("store: round not found")

// Store defines the round storage used by the HTTP server.
type Store interface {
	// Save adds or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get returns a copy of the round.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Update runs fn with exclusive access to the stored round.
	// Changes made by fn are kept even when fn returns an error.
	Update(ctx context.Context, id string, fn func(*game.Round) error) error

	// Len reports the number of live rounds.
	Len() int
}

type entry struct {
	mu       sync.Mutex // serializes actions on this round
	round    *game.Round
	lastSeen atomic.Int64 // unix nanoseconds
}

func (e *entry) touch(t time.Time) { e.lastSeen.Store(t.UnixNano()) }

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex // guards rounds map
	rounds map[string]*entry
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStore constructs a Store. A zero ttl keeps rounds forever.
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{rounds: make(map[string]*entry), ttl: ttl, now: time.Now}
}

// Save adds or replaces the round and sweeps idle entries.
func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	e := &entry{round: r.Clone()}
	e.touch(m.now())
	m.rounds[r.ID] = e
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touch(m.now())
	return e.round.Clone(), nil
}

// Update locks the round for the duration of fn.
func (m *memory) Update(ctx context.Context, id string, fn func(*game.Round) error) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	e.touch(m.now())
	return fn(e.round)
}

// Len returns the number of stored rounds.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rounds)
}

func (m *memory) lookup(id string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.rounds[id]
	if !ok || m.expired(e) {
		return nil, ErrNotFound
	}
	return e, nil
}

func (m *memory) expired(e *entry) bool {
	return m.ttl > 0 && m.now().UnixNano()-e.lastSeen.Load() > int64(m.ttl)
}

// sweepLocked drops idle rounds; callers hold m.mu for writing.
func (m *memory) sweepLocked() {
	if m.ttl <= 0 {
		return
	}
	for id, e := range m.rounds {
		if m.expired(e) {
			delete(m.rounds, id)
		}
	}
}
