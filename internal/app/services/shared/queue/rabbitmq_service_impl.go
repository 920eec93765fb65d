package queue

import (
	"context"
	"medipass-service/internal/app/contracts"
	"medipass-service/internal/pkg/constvars"
	"medipass-service/internal/pkg/exceptions"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	queueServiceInstance contracts.MessageQueueService
	onceQueueService     sync.Once
)

type rabbitMQService struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger
	mu   sync.Mutex
}

// NewRabbitMQService opens a channel and declares the durable queue together
// with its dead letter queue, named <queue>.dlq.
func NewRabbitMQService(conn *amqp.Connection, log *zap.Logger, queueNames ...string) (contracts.MessageQueueService, error) {
	var initErr error
	onceQueueService.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		for _, queueName := range queueNames {
			dlqName := queueName + ".dlq"

			_, err = ch.QueueDeclare(dlqName, true, false, false, false, nil)
			if err != nil {
				initErr = err
				return
			}

			_, err = ch.QueueDeclare(queueName, true, false, false, false, amqp.Table{
				"x-dead-letter-exchange":    "",
				"x-dead-letter-routing-key": dlqName,
			})
			if err != nil {
				initErr = err
				return
			}
		}

		if err := ch.Qos(1, 0, false); err != nil {
			initErr = err
			return
		}

		queueServiceInstance = &rabbitMQService{
			conn: conn,
			ch:   ch,
			log:  log,
		}
	})
	return queueServiceInstance, initErr
}

func (s *rabbitMQService) Publish(ctx context.Context, queueName string, body []byte) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("rabbitMQService.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queueName),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return exceptions.ErrQueuePublishMessage(err, queueName)
	}
	return nil
}

func (s *rabbitMQService) Consume(queueName string, handler func(ctx context.Context, body []byte) error) error {
	deliveries, err := s.ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrQueueConsume(err, queueName)
	}

	go func() {
		for delivery := range deliveries {
			if err := handler(context.Background(), delivery.Body); err != nil {
				s.log.Error("rabbitMQService.Consume handler failed, sending to DLQ",
					zap.String(constvars.LoggingQueueKey, queueName),
					zap.Error(err),
				)
				delivery.Nack(false, false)
				continue
			}
			delivery.Ack(false)
		}
	}()

	return nil
}

func (s *rabbitMQService) Close() error {
	return s.ch.Close()
}
