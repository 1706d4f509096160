package admin

import (
	"context"

	domain "github.com/BruksfildServices01/massage-bot/internal/domain/booking"
	"github.com/BruksfildServices01/massage-bot/internal/models"
)

// Read-only reporting plus pruning over the booking store, bypassing the
// conversation flow entirely.

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.All(ctx)
}

type SourceStats struct {
	repo domain.Repository
}

func NewSourceStats(repo domain.Repository) *SourceStats {
	return &SourceStats{repo: repo}
}

func (uc *SourceStats) Execute(ctx context.Context) ([]domain.SourceCount, error) {
	return uc.repo.CountBySource(ctx)
}

type PruneOld struct {
	repo domain.Repository
}

func NewPruneOld(repo domain.Repository) *PruneOld {
	return &PruneOld{repo: repo}
}

// Execute deletes every appointment dated strictly before today.
func (uc *PruneOld) Execute(ctx context.Context, today string) (int64, error) {
	return uc.repo.DeleteBefore(ctx, today)
}
