package scheduler

import (
	"sync"

	"retrobooth/internal/domain"
)

// eraQueue is the FIFO backlog consumed by the worker pool. Each era is
// enqueued at most once per run. dequeue holds the lock for its whole body and
// contains no blocking call, so no two workers can ever observe the same head.
type eraQueue struct {
	mu    sync.Mutex
	items []domain.Era
}

func (q *eraQueue) reset(eras []domain.Era) {
	q.mu.Lock()
	q.items = append(q.items[:0], eras...)
	q.mu.Unlock()
}

func (q *eraQueue) dequeue() (domain.Era, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return "", false
	}
	era := q.items[0]
	q.items = q.items[1:]
	return era, true
}

func (q *eraQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
