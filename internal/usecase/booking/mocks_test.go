package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dcarehealth/transport-api/internal/audit"
	"github.com/dcarehealth/transport-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockRepository) ListBookingsForPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockRepository) GetBookingForPatient(ctx context.Context, bookingID, patientID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockRepository) DeleteBooking(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type recorderStub struct {
	events []audit.Event
}

func (r *recorderStub) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

type notifierStub struct {
	urgent []*models.Booking
}

func (n *notifierStub) NotifyUrgent(ctx context.Context, b *models.Booking) {
	n.urgent = append(n.urgent, b)
}
