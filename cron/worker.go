package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"labline/config"
	bookingRepo "labline/database/repository/booking"
	"labline/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitFollowUpWorker runs the async worker in background. The worker surfaces
// confirmed bookings to lab staff once their follow-up delay elapses.
func InitFollowUpWorker(repo bookingRepo.BookingRepository, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingFollowUp, handleFollowUpTask(repo, logger))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowUpWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowUpWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowUpWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleFollowUpTask(repo bookingRepo.BookingRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.FollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("follow-up task carries invalid payload", zap.Error(err))
			return err
		}

		// Re-read the record so staff see the stored state, not the payload
		// snapshot. A missing record means persistence failed at confirm
		// time; the payload still carries enough to act on.
		if p.BookingID != "" {
			if stored, err := repo.GetByID(ctx, p.BookingID); err == nil {
				p.Name = stored.Name
				p.ServiceName = stored.ServiceName
				p.Address = stored.Address
				p.PreferredTime = stored.PreferredTime
			} else {
				logger.Warn("follow-up could not load stored booking",
					zap.String("bookingId", p.BookingID), zap.Error(err))
			}
		}

		logger.Info("booking awaiting staff confirmation",
			zap.String("bookingId", p.BookingID),
			zap.String("userId", p.UserID),
			zap.String("name", p.Name),
			zap.String("service", p.ServiceName),
			zap.String("address", p.Address),
			zap.String("preferredTime", p.PreferredTime))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[FollowUpWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
