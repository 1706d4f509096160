package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/massage-bot/internal/domain/booking"
	"github.com/BruksfildServices01/massage-bot/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) CountAt(
	ctx context.Context,
	date string,
	timeHM string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND time = ?", date, timeHM).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *BookingGormRepository) ByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) All(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) CountBySource(
	ctx context.Context,
) ([]domain.SourceCount, error) {

	var stats []domain.SourceCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("utm_source AS source, COUNT(*) AS count").
		Group("utm_source").
		Order("count DESC").
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// --------------------------------------------------
// Prune
// --------------------------------------------------

func (r *BookingGormRepository) DeleteBefore(
	ctx context.Context,
	date string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("date < ?", date).
		Delete(&models.Appointment{})
	return res.RowsAffected, res.Error
}
