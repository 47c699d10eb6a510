package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bookwise/config"
	"bookwise/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// Reminders fire this long before the appointment starts.
const reminderLead = 30 * time.Minute

// ReminderPayload is the task body for a booking reminder.
type ReminderPayload struct {
	BookingID string    `json:"bookingId"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Scheduler enqueues booking reminders.
type Scheduler struct {
	client *asynq.Client
}

func NewScheduler() *Scheduler {
	return &Scheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder due before the appointment start.
// Appointments starting within the lead window get no reminder.
func (s *Scheduler) ScheduleReminder(bookingID, title string, start time.Time) error {
	due := start.Add(-reminderLead)
	if due.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(ReminderPayload{
		BookingID: bookingID,
		Title:     title,
		Start:     start,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(due))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] Worker stopped: %v", err)
		}
	}()
}

func handleReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	logger := utils.GetLogger()
	logger.Info("Appointment reminder due",
		zap.String("bookingID", payload.BookingID),
		zap.String("title", payload.Title),
		zap.Time("start", payload.Start))
	return nil
}
