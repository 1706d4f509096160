package scheduler

import (
	"context"
	"fmt"
	"time"
)

// Reminder is a one-shot deferred notification.
type Reminder struct {
	FireAt time.Time `json:"fire_at"`
	Text   string    `json:"text"`
}

// Scheduler enqueues a reminder for later delivery. At-most-once,
// fire-and-forget: delivery failures are logged by the implementation and
// never surface back to the caller.
type Scheduler interface {
	Schedule(ctx context.Context, chatID int64, r Reminder) error
}

// Notifier delivers reminder text to a chat. Implemented by the bot
// transport.
type Notifier interface {
	Notify(chatID int64, text string) error
}

// ReminderPlan computes the reminders for an appointment: one a day
// before, one 90 minutes before. Triggers not strictly in the future are
// skipped, never fired late.
func ReminderPlan(appointmentAt, now time.Time, masterName string) []Reminder {
	var plan []Reminder

	if at := appointmentAt.Add(-24 * time.Hour); at.After(now) {
		plan = append(plan, Reminder{
			FireAt: at,
			Text: fmt.Sprintf(
				"⏰ Напоминаем! Завтра в %s у вас сеанс массажа у %s",
				appointmentAt.Format("15:04"),
				masterName,
			),
		})
	}

	if at := appointmentAt.Add(-90 * time.Minute); at.After(now) {
		plan = append(plan, Reminder{
			FireAt: at,
			Text:   "⏳ Через полтора часа у вас массаж. Не забудьте явиться!",
		})
	}

	return plan
}
