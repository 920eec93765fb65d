package contracts

import "context"

type MessageQueueService interface {
	Publish(ctx context.Context, queueName string, body []byte) error
	Consume(queueName string, handler func(ctx context.Context, body []byte) error) error
	Close() error
}
