package models

// WorkingHours describes the single daily working window and the set of
// workable weekday short codes (mon..sun). Immutable configuration.
type WorkingHours struct {
	StartHour int      `json:"start_hour"`
	EndHour   int      `json:"end_hour"`
	Weekdays  []string `json:"weekdays"`
}

func (wh WorkingHours) Workable(code string) bool {
	for _, d := range wh.Weekdays {
		if d == code {
			return true
		}
	}
	return false
}
