package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/massage-bot/internal/domain/booking"
	"github.com/BruksfildServices01/massage-bot/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID int64
	Name   string

	Service string
	Date    string
	Time    string

	Source string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
}

func NewCreateBooking(repo domain.Repository) *CreateBooking {
	return &CreateBooking{repo: repo}
}

// Execute re-checks occupancy of (date, time) right before inserting and
// rejects with slot_taken when another booking got there first. The menu
// the user pressed may be minutes stale; this narrows the race to the gap
// between the count and the insert.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	taken, err := uc.repo.CountAt(ctx, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, domain.ErrBusiness(domain.CodeSlotTaken)
	}

	source := in.Source
	if source == "" {
		source = "organic"
	}

	ap := &models.Appointment{
		Ref:       uuid.NewString(),
		UserID:    in.UserID,
		Name:      in.Name,
		Service:   in.Service,
		Date:      in.Date,
		Time:      in.Time,
		UTMSource: source,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}
