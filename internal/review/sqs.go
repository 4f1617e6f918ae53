package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sqssdk "github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/pricofy/localization-orchestrator/internal/domain"
)

// SendMessageAPI is the subset of the SQS client used by SQSQueue.
type SendMessageAPI interface {
	SendMessage(ctx context.Context, params *sqssdk.SendMessageInput, optFns ...func(*sqssdk.Options)) (*sqssdk.SendMessageOutput, error)
}

// messageGroup keys all review items into one SQS FIFO group so the external
// consumer sees them in enqueue order.
const messageGroup = "review"

// SQSQueue appends review items to an SQS FIFO queue.
type SQSQueue struct {
	client   SendMessageAPI
	queueURL string
}

// NewSQSQueue builds an SQS-backed Queue for the given queue URL.
func NewSQSQueue(client SendMessageAPI, queueURL string) *SQSQueue {
	return &SQSQueue{client: client, queueURL: queueURL}
}

// Enqueue implements Queue.
func (q *SQSQueue) Enqueue(ctx context.Context, item domain.ReviewQueueItem) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("review: marshal item: %w", err)
	}

	_, err = q.client.SendMessage(ctx, &sqssdk.SendMessageInput{
		QueueUrl:               aws.String(q.queueURL),
		MessageBody:            aws.String(string(body)),
		MessageGroupId:         aws.String(messageGroup),
		MessageDeduplicationId: aws.String(item.ID),
	})
	if err != nil {
		return fmt.Errorf("review: send message: %w", err)
	}
	return nil
}
