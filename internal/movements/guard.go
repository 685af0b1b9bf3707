package movements

import (
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrInFlight is returned when an action is triggered while the same action
// key is still pending. Nothing is sent in that case.
var ErrInFlight = errors.New("action already in progress")

// Guard admits one pending action per key. Idle keys hold no state.
type Guard struct {
	mu    sync.Mutex
	slots map[string]*semaphore.Weighted
}

func NewGuard() *Guard {
	return &Guard{slots: make(map[string]*semaphore.Weighted)}
}

// TryAcquire never blocks. When ok is false the key is busy and release is nil.
func (g *Guard) TryAcquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	slot, exists := g.slots[key]
	if !exists {
		slot = semaphore.NewWeighted(1)
		g.slots[key] = slot
	}
	g.mu.Unlock()

	if !slot.TryAcquire(1) {
		return nil, false
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			if g.slots[key] == slot {
				delete(g.slots, key)
			}
			g.mu.Unlock()
			slot.Release(1)
		})
	}, true
}
