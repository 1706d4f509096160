package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/massage-bot/internal/models"
)

// FreeSlots walks the working window and collects free start times for a
// service. The cursor always advances by duration+break, whether or not
// the slot was taken: an occupied slot still consumes the full window, no
// attempt is made to squeeze into a smaller gap after a conflict.
//
// occupied is the set of HH:MM start times already booked for the day.
// The result is ordered earliest first and may be empty.
func FreeSlots(
	svc models.Service,
	wh models.WorkingHours,
	breakMin int,
	occupied []string,
) []string {

	cur := wh.StartHour * 60
	end := wh.EndHour * 60
	step := svc.DurationMin + breakMin

	var slots []string
	for cur+svc.DurationMin <= end {
		slot := formatHM(cur)
		if !contains(occupied, slot) {
			slots = append(slots, slot)
		}
		cur += step
	}
	return slots
}

// WorkableDays returns, from ref inclusive, the days within the next
// horizon calendar days whose weekday is workable, in chronological order.
func WorkableDays(ref time.Time, wh models.WorkingHours, horizon int) []time.Time {
	var days []time.Time
	for i := 0; i < horizon; i++ {
		day := ref.AddDate(0, 0, i)
		if wh.Workable(WeekdayCode(day.Weekday())) {
			days = append(days, day)
		}
	}
	return days
}

// WeekdayCode maps a weekday to the lowercase short code used in the
// working-day configuration.
func WeekdayCode(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "mon"
	case time.Tuesday:
		return "tue"
	case time.Wednesday:
		return "wed"
	case time.Thursday:
		return "thu"
	case time.Friday:
		return "fri"
	case time.Saturday:
		return "sat"
	default:
		return "sun"
	}
}

func formatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
