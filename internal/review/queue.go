// Package review provides the append-only queue for human review escalation.
package review

import (
	"context"
	"sync"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// Queue is an append-only sink for low-quality results. Ordering is FIFO by
// enqueue time; implementations must be safe under concurrent writers.
// Consumption is an external collaborator's responsibility.
type Queue interface {
	Enqueue(ctx context.Context, item domain.ReviewQueueItem) error
}

// MemoryQueue is a concurrency-safe in-memory FIFO Queue, used in local
// deployments and tests.
type MemoryQueue struct {
	mu    sync.Mutex
	items []domain.ReviewQueueItem
}

// NewMemoryQueue builds an empty MemoryQueue.
func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{}
}

// Enqueue implements Queue.
func (q *MemoryQueue) Enqueue(_ context.Context, item domain.ReviewQueueItem) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, item)
	return nil
}

// Items returns a snapshot of the queue in enqueue order.
func (q *MemoryQueue) Items() []domain.ReviewQueueItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]domain.ReviewQueueItem, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the current queue depth.
func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
