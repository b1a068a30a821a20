package booking

import (
	"context"

	domain "github.com/dcarehealth/transport-api/internal/domain/booking"
	"github.com/dcarehealth/transport-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns every booking owned by the patient, newest first.
func (uc *ListBookings) Execute(
	ctx context.Context,
	patientID string,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForPatient(ctx, patientID)
}
