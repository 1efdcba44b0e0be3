package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"petalflow/config"
	inquiryRepo "petalflow/database/repository/inquiry"
	sessionRepo "petalflow/database/repository/session"

	"github.com/hibiken/asynq"
)

const TypeAbandonedReminder = "onboarding:abandoned"

type abandonedPayload struct {
	SessionID string `json:"sessionId"`
	InquiryID int64  `json:"inquiryId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler enqueues abandoned-wizard follow-ups.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler on the reminder queue DB.
func NewReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleAbandonedReminder enqueues a follow-up task to fire after delay.
func (s *AsynqReminderScheduler) ScheduleAbandonedReminder(sessionID string, inquiryID int64, delay time.Duration) error {
	payload, err := json.Marshal(abandonedPayload{SessionID: sessionID, InquiryID: inquiryID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeAbandonedReminder, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessIn(delay))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(sessions sessionRepo.SessionRepository, inquiries inquiryRepo.InquiryRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAbandonedReminder, handleAbandonedTask(sessions, inquiries))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAbandonedTask(sessions sessionRepo.SessionRepository, inquiries inquiryRepo.InquiryRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p abandonedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AbandonedHandler] invalid payload: %v", err)
			return err
		}

		session, err := sessions.Get(p.SessionID)
		if err != nil {
			// Session expired or reset; the lead still exists, flag it.
			log.Printf("[AbandonedHandler] session %s gone, inquiry %d left incomplete", p.SessionID, p.InquiryID)
			return nil
		}
		if session.IsCompleted {
			return nil
		}

		inquiry, err := inquiries.GetByID(p.InquiryID)
		if err != nil {
			log.Printf("[AbandonedHandler] inquiry %d not found: %v", p.InquiryID, err)
			return nil
		}

		log.Printf("[AbandonedHandler] inquiry %d (%s) stalled at step %d/%d, vendor %s should follow up",
			inquiry.InquiryID, inquiry.Email, session.CurrentStep, session.TotalSteps, inquiry.VendorID)
		return nil
	}
}
