package models

import "time"

type Appointment struct {
	ID  uint   `gorm:"primaryKey" json:"id"`
	Ref string `gorm:"size:36;uniqueIndex" json:"ref"`

	UserID int64  `gorm:"index" json:"user_id"`
	Name   string `gorm:"size:255" json:"name"`

	Service string `gorm:"size:255;not null" json:"service"`

	// Date is YYYY-MM-DD, Time is HH:MM. Kept as strings: the whole
	// scheduling model works on formatted values, and the pruning query
	// relies on lexicographic date comparison.
	Date string `gorm:"size:10;index;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	UTMSource string `gorm:"size:64;default:'organic'" json:"utm_source"`

	CreatedAt time.Time `json:"created_at"`
}
