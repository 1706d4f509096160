package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// MemoryScheduler fires reminders from in-process timers. Pending
// reminders are lost on restart; that matches the accepted design of the
// original system and is the default when redis is not configured.
type MemoryScheduler struct {
	notifier Notifier
	log      *zap.Logger
}

func NewMemoryScheduler(notifier Notifier, log *zap.Logger) *MemoryScheduler {
	return &MemoryScheduler{notifier: notifier, log: log}
}

func (s *MemoryScheduler) Schedule(_ context.Context, chatID int64, r Reminder) error {
	delay := time.Until(r.FireAt)
	if delay <= 0 {
		return nil
	}

	time.AfterFunc(delay, func() {
		if err := s.notifier.Notify(chatID, r.Text); err != nil {
			s.log.Warn("reminder delivery failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
	})

	s.log.Debug("reminder scheduled",
		zap.Int64("chat_id", chatID),
		zap.Time("fire_at", r.FireAt),
	)
	return nil
}
