package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/massage-bot/internal/domain/booking"
	"github.com/BruksfildServices01/massage-bot/internal/models"
)

// DayOption is a workable day annotated with the free start times for the
// service the user is booking. The caption rendering belongs to the flow.
type DayOption struct {
	Date  time.Time
	Slots []string
}

type ListDays struct {
	avail   *GetAvailability
	hours   models.WorkingHours
	horizon int
	now     func() time.Time
}

func NewListDays(
	avail *GetAvailability,
	hours models.WorkingHours,
	horizon int,
	now func() time.Time,
) *ListDays {
	return &ListDays{
		avail:   avail,
		hours:   hours,
		horizon: horizon,
		now:     now,
	}
}

func (uc *ListDays) Execute(
	ctx context.Context,
	svc models.Service,
) ([]DayOption, error) {

	days := domain.WorkableDays(uc.now(), uc.hours, uc.horizon)

	out := make([]DayOption, 0, len(days))
	for _, day := range days {
		slots, err := uc.avail.Execute(ctx, day.Format("2006-01-02"), svc)
		if err != nil {
			return nil, err
		}
		out = append(out, DayOption{Date: day, Slots: slots})
	}
	return out, nil
}

// ResolveDate finds the first day within the horizon matching the weekday
// code; ok is false when the code is outside the workable horizon.
func (uc *ListDays) ResolveDate(code string) (string, bool) {
	for _, day := range domain.WorkableDays(uc.now(), uc.hours, uc.horizon) {
		if domain.WeekdayCode(day.Weekday()) == code {
			return day.Format("2006-01-02"), true
		}
	}
	return "", false
}
