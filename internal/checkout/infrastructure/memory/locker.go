package memory

import (
	"context"
	"sync"
)

// Locker serializes holders of the same key within one process.
type Locker struct {
	mu    sync.Mutex
	slots map[string]*lockSlot
}

type lockSlot struct {
	ch      chan struct{}
	waiters int
}

func NewLocker() *Locker {
	return &Locker{
		slots: make(map[string]*lockSlot),
	}
}

func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[key]
	if !ok {
		slot = &lockSlot{ch: make(chan struct{}, 1)}
		l.slots[key] = slot
	}
	slot.waiters++
	l.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, slot, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.release(key, slot, true)
		})
	}, nil
}

func (l *Locker) release(key string, slot *lockSlot, held bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if held {
		<-slot.ch
	}

	slot.waiters--
	if slot.waiters == 0 {
		delete(l.slots, key)
	}
}
