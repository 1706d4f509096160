package booking

import (
	"context"

	"github.com/BruksfildServices01/massage-bot/internal/models"
)

type SourceCount struct {
	Source string
	Count  int64
}

type Repository interface {
	// -------- Appointment (create) --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	CountAt(
		ctx context.Context,
		date string,
		timeHM string,
	) (int64, error)

	// -------- Appointment (read) --------
	ByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	All(
		ctx context.Context,
	) ([]models.Appointment, error)

	CountBySource(
		ctx context.Context,
	) ([]SourceCount, error)

	// -------- Appointment (prune) --------
	DeleteBefore(
		ctx context.Context,
		date string,
	) (int64, error)
}
