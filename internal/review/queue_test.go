package review

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	sqssdk "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

func TestMemoryQueue_FIFO(t *testing.T) {
	q := NewMemoryQueue()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		item := domain.ReviewQueueItem{
			ID:         fmt.Sprintf("item-%d", i),
			Locale:     "de",
			EnqueuedAt: time.Now().UTC(),
		}
		require.NoError(t, q.Enqueue(ctx, item))
	}

	items := q.Items()
	require.Len(t, items, 5)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("item-%d", i), item.ID)
	}
}

func TestMemoryQueue_ConcurrentWriters(t *testing.T) {
	q := NewMemoryQueue()
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = q.Enqueue(ctx, domain.ReviewQueueItem{ID: fmt.Sprintf("w-%d", i)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, writers, q.Len())
}

func TestMemoryQueue_ItemsIsSnapshot(t *testing.T) {
	q := NewMemoryQueue()
	require.NoError(t, q.Enqueue(context.Background(), domain.ReviewQueueItem{ID: "a"}))

	snapshot := q.Items()
	snapshot[0].ID = "mutated"

	assert.Equal(t, "a", q.Items()[0].ID)
}

type fakeSQS struct {
	mu     sync.Mutex
	inputs []*sqssdk.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(_ context.Context, params *sqssdk.SendMessageInput, _ ...func(*sqssdk.Options)) (*sqssdk.SendMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, params)
	return &sqssdk.SendMessageOutput{}, nil
}

func TestSQSQueue_Enqueue(t *testing.T) {
	fake := &fakeSQS{}
	q := NewSQSQueue(fake, "https://sqs.example/review.fifo")

	item := domain.ReviewQueueItem{
		ID:           "abc-123",
		Locale:       "es",
		QualityScore: 0.65,
		EnqueuedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, q.Enqueue(context.Background(), item))

	require.Len(t, fake.inputs, 1)
	in := fake.inputs[0]
	assert.Equal(t, "https://sqs.example/review.fifo", *in.QueueUrl)
	assert.Equal(t, "review", *in.MessageGroupId)
	assert.Equal(t, "abc-123", *in.MessageDeduplicationId)
	assert.Contains(t, *in.MessageBody, `"locale":"es"`)
}

func TestSQSQueue_SendError(t *testing.T) {
	fake := &fakeSQS{err: fmt.Errorf("network down")}
	q := NewSQSQueue(fake, "https://sqs.example/review.fifo")

	err := q.Enqueue(context.Background(), domain.ReviewQueueItem{ID: "x"})
	assert.ErrorContains(t, err, "network down")
}
