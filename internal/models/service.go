package models

// Service is a catalog entry. The set is fixed at configuration time and
// immutable at runtime, so it never touches the database.
type Service struct {
	Label       string `json:"label"`
	DurationMin int    `json:"duration_min"`
}
