package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dcarehealth/transport-api/internal/audit"
	domain "github.com/dcarehealth/transport-api/internal/domain/booking"
	"github.com/dcarehealth/transport-api/internal/httperr"
)

type CancelBooking struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCancelBooking(
	repo domain.Repository,
	audit audit.Recorder,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes a booking after proving the caller owns it. A booking
// that does not exist and a booking owned by someone else are the same
// error, so existence is never leaked across users.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	patientID string,
	bookingID string,
) error {

	b, err := uc.repo.GetBookingForPatient(ctx, bookingID, patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   patientID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
