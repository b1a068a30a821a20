package booking

import (
	"context"
	"time"

	"github.com/dcarehealth/transport-api/internal/audit"
	"github.com/dcarehealth/transport-api/internal/dispatch"
	domain "github.com/dcarehealth/transport-api/internal/domain/booking"
	"github.com/dcarehealth/transport-api/internal/models"
)

type CreateBookingInput struct {
	PatientID string

	ServiceType     string
	PickupLocation  string
	DropoffLocation string
	ScheduledTime   *time.Time
}

type CreateBooking struct {
	repo     domain.Repository
	audit    audit.Recorder
	dispatch dispatch.Notifier
}

func NewCreateBooking(
	repo domain.Repository,
	audit audit.Recorder,
	dispatch dispatch.Notifier,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		dispatch: dispatch,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	b := &models.Booking{
		PatientID:       in.PatientID,
		ServiceType:     in.ServiceType,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
		ScheduledTime:   in.ScheduledTime,
		Status:          string(domain.InitialStatus(in.ServiceType)),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Urgent rides are announced to the dispatch desk; a publish
	// failure never fails the booking itself.
	if b.Status == string(domain.StatusUrgentDispatch) {
		uc.dispatch.NotifyUrgent(ctx, b)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.PatientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
