package cron

import (
	"encoding/json"
	"fmt"

	"mercato/config"

	"github.com/hibiken/asynq"
)

// TypeOrderConfirmation is the task type for post-checkout confirmations.
const TypeOrderConfirmation = "order:confirmation"

// OrderConfirmationPayload is the task payload.
type OrderConfirmationPayload struct {
	OrderID string `json:"orderId"`
}

// TaskClient enqueues background tasks onto the Redis-backed queue.
type TaskClient struct {
	client *asynq.Client
}

// NewTaskClient creates a task client against the configured Redis instance.
func NewTaskClient() *TaskClient {
	return &TaskClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskDB,
		}),
	}
}

// EnqueueOrderConfirmation schedules confirmation delivery for a placed order.
func (t *TaskClient) EnqueueOrderConfirmation(orderID string) error {
	payload, err := json.Marshal(OrderConfirmationPayload{OrderID: orderID})
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}
	task := asynq.NewTask(TypeOrderConfirmation, payload)
	if _, err := t.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (t *TaskClient) Close() error {
	return t.client.Close()
}
