package mutator

import (
	"context"
	"sync"
)

type rowKey struct {
	kind string
	id   int64
}

// rowLocks serializa las mutaciones sobre una misma fila. Las esperas respetan
// la cancelación del contexto.
type rowLocks struct {
	mu   sync.Mutex
	held map[rowKey]chan struct{}
}

func newRowLocks() *rowLocks {
	return &rowLocks{held: make(map[rowKey]chan struct{})}
}

// lock bloquea la fila y devuelve la función que la libera.
func (l *rowLocks) lock(ctx context.Context, key rowKey) (func(), error) {
	for {
		l.mu.Lock()
		busy, ok := l.held[key]
		if !ok {
			done := make(chan struct{})
			l.held[key] = done
			l.mu.Unlock()
			return func() {
				l.mu.Lock()
				delete(l.held, key)
				l.mu.Unlock()
				close(done)
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-busy:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
