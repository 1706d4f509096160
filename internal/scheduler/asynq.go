package scheduler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

type reminderPayload struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// AsynqScheduler backs reminders with a redis task queue, so pending
// reminders survive restarts. Used instead of MemoryScheduler when
// REDIS_ADDR is configured.
type AsynqScheduler struct {
	client *asynq.Client
	log    *zap.Logger
}

func NewAsynqScheduler(redisOpts asynq.RedisClientOpt, log *zap.Logger) *AsynqScheduler {
	return &AsynqScheduler{
		client: asynq.NewClient(redisOpts),
		log:    log,
	}
}

func (s *AsynqScheduler) Schedule(ctx context.Context, chatID int64, r Reminder) error {
	if !r.FireAt.After(time.Now()) {
		return nil
	}

	b, err := json.Marshal(reminderPayload{ChatID: chatID, Text: r.Text})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeSendReminder, b)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(r.FireAt)); err != nil {
		return err
	}

	s.log.Debug("reminder enqueued",
		zap.Int64("chat_id", chatID),
		zap.Time("fire_at", r.FireAt),
	)
	return nil
}

func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}

// RunWorker starts the embedded asynq server delivering due reminders
// through the notifier. Blocks until the server stops.
func RunWorker(redisOpts asynq.RedisClientOpt, notifier Notifier, log *zap.Logger) error {
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
	mux.HandleFunc(TypeSendReminder, func(_ context.Context, task *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		if err := notifier.Notify(p.ChatID, p.Text); err != nil {
			// at-most-once: log and swallow, no retry
			log.Warn("reminder delivery failed",
				zap.Int64("chat_id", p.ChatID),
				zap.Error(err),
			)
		}
		return nil
	})

	return srv.Run(mux)
}
