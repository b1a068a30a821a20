package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/dcarehealth/transport-api/internal/domain/booking"
	"github.com/dcarehealth/transport-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) ListBookingsForPatient(
	ctx context.Context,
	patientID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetBookingForPatient(
	ctx context.Context,
	bookingID string,
	patientID string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", bookingID, patientID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Booking{}, "id = ?", bookingID).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
