package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"mercato/config"
	orderRepo "mercato/database/repository/order"
	userRepo "mercato/database/repository/user"
	"mercato/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// InitOrderConfirmationWorker runs the async worker in background.
func InitOrderConfirmationWorker(orders orderRepo.OrderRepository, users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOrderConfirmation, handleOrderConfirmation(orders, users))

	// Start async worker with retry logic
	go func() {
		log.Println("[ConfirmationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleOrderConfirmation resolves the order and its account and records the
// confirmation delivery.
func handleOrderConfirmation(orders orderRepo.OrderRepository, users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var payload OrderConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid confirmation payload: %w", err)
		}

		ord, err := orders.GetByID(payload.OrderID)
		if err != nil {
			return fmt.Errorf("failed to load order %s: %w", payload.OrderID, err)
		}

		proj := bson.M{"id": 1, "name": 1, "email": 1}
		acct, err := users.GetByIDWithProjection(ord.UserID, proj)
		if err != nil {
			return fmt.Errorf("failed to resolve account for order %s: %w", ord.ID, err)
		}

		logger.Info("Order confirmation delivered",
			zap.String("order", ord.OrderNumber),
			zap.String("email", acct.Email),
			zap.Float64("total", ord.Total))
		return nil
	}
}
