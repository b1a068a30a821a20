package booking

import (
	"context"

	"github.com/dcarehealth/transport-api/internal/models"
)

// Repository is owner-scoped by construction: every read takes the
// patient identity resolved from the token, never a caller-supplied
// one.
type Repository interface {
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForPatient(
		ctx context.Context,
		patientID string,
	) ([]models.Booking, error)

	GetBookingForPatient(
		ctx context.Context,
		bookingID string,
		patientID string,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		bookingID string,
	) error
}
