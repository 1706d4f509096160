package booking

import (
	"context"

	domain "github.com/BruksfildServices01/massage-bot/internal/domain/booking"
	"github.com/BruksfildServices01/massage-bot/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo     domain.Repository
	hours    models.WorkingHours
	breakMin int
}

func NewGetAvailability(
	repo domain.Repository,
	hours models.WorkingHours,
	breakMin int,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		hours:    hours,
		breakMin: breakMin,
	}
}

// Execute reads the full day's bookings and computes the free start times
// for the given service.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	svc models.Service,
) ([]string, error) {

	aps, err := uc.repo.ByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	occupied := make([]string, 0, len(aps))
	for _, ap := range aps {
		occupied = append(occupied, ap.Time)
	}

	return domain.FreeSlots(svc, uc.hours, uc.breakMin, occupied), nil
}
