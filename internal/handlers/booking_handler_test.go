package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dcarehealth/transport-api/internal/audit"
	"github.com/dcarehealth/transport-api/internal/dispatch"
	"github.com/dcarehealth/transport-api/internal/middleware"
	"github.com/dcarehealth/transport-api/internal/models"
	ucBooking "github.com/dcarehealth/transport-api/internal/usecase/booking"
)

// fakeBookingRepo is an in-memory stand-in for the gorm repository.
type fakeBookingRepo struct {
	bookings map[string]models.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]models.Booking{}}
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	f.seq++
	b.CreatedAt = time.Unix(int64(f.seq), 0)
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeBookingRepo) ListBookingsForPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PatientID == patientID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeBookingRepo) GetBookingForPatient(ctx context.Context, bookingID, patientID string) (*models.Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok || b.PatientID != patientID {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (f *fakeBookingRepo) DeleteBooking(ctx context.Context, bookingID string) error {
	delete(f.bookings, bookingID)
	return nil
}

type nopRecorder struct{}

func (nopRecorder) Dispatch(ev audit.Event) {}

// identityFromHeader stands in for the auth middleware so each request
// can pick its caller.
func identityFromHeader(c *gin.Context) {
	c.Set(middleware.ContextUserID, c.GetHeader("X-Test-User"))
	c.Next()
}

func newBookingRouter(repo *fakeBookingRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookingHandler(
		ucBooking.NewCreateBooking(repo, nopRecorder{}, dispatch.NoopNotifier{}),
		ucBooking.NewListBookings(repo),
		ucBooking.NewCancelBooking(repo, nopRecorder{}),
	)

	r := gin.New()
	r.Use(identityFromHeader)
	r.POST("/api/bookings", h.Create)
	r.GET("/api/bookings", h.List)
	r.DELETE("/api/bookings", h.Cancel)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User", user)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEmergencyBooking(t *testing.T) {
	r := newBookingRouter(newFakeBookingRepo())

	w := doJSON(t, r, http.MethodPost, "/api/bookings", "patient-1",
		`{"serviceType":"EMERGENCY","pickupLocation":"Current Location","dropoffLocation":"Nearest Hospital"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, "URGENT_DISPATCH", b.Status)
	assert.Equal(t, "patient-1", b.PatientID)
	assert.NotEmpty(t, b.ID)
}

func TestCreateRegularBooking(t *testing.T) {
	r := newBookingRouter(newFakeBookingRepo())

	w := doJSON(t, r, http.MethodPost, "/api/bookings", "patient-1",
		`{"serviceType":"Medical Transport","pickupLocation":"Home","dropoffLocation":"Clinic"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, "PENDING", b.Status)
}

func TestCreateBookingMissingFields(t *testing.T) {
	r := newBookingRouter(newFakeBookingRepo())

	w := doJSON(t, r, http.MethodPost, "/api/bookings", "patient-1",
		`{"serviceType":"Medical Transport"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookingsIsOwnerScopedAndNewestFirst(t *testing.T) {
	repo := newFakeBookingRepo()
	r := newBookingRouter(repo)

	doJSON(t, r, http.MethodPost, "/api/bookings", "patient-1",
		`{"serviceType":"Medical Transport","pickupLocation":"Home","dropoffLocation":"Clinic"}`)
	doJSON(t, r, http.MethodPost, "/api/bookings", "patient-2",
		`{"serviceType":"Medical Transport","pickupLocation":"Home","dropoffLocation":"Clinic"}`)
	doJSON(t, r, http.MethodPost, "/api/bookings", "patient-1",
		`{"serviceType":"EMERGENCY","pickupLocation":"Current Location","dropoffLocation":"Nearest Hospital"}`)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", "patient-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 2)

	// newest first: the emergency booking was created last
	assert.Equal(t, "URGENT_DISPATCH", bookings[0].Status)
	assert.Equal(t, "PENDING", bookings[1].Status)
	for _, b := range bookings {
		assert.Equal(t, "patient-1", b.PatientID)
	}
}

func TestCancelOwnBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", "patient-1",
		`{"serviceType":"Medical Transport","pickupLocation":"Home","dropoffLocation":"Clinic"}`)
	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))

	w = doJSON(t, r, http.MethodDelete, "/api/bookings?id="+b.ID, "patient-1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, repo.bookings)
}

func TestCancelForeignBookingIsNotFound(t *testing.T) {
	repo := newFakeBookingRepo()
	r := newBookingRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", "patient-1",
		`{"serviceType":"Medical Transport","pickupLocation":"Home","dropoffLocation":"Clinic"}`)
	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))

	w = doJSON(t, r, http.MethodDelete, "/api/bookings?id="+b.ID, "patient-2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the row is untouched
	_, ok := repo.bookings[b.ID]
	assert.True(t, ok)
}

func TestCancelWithoutIDIsBadRequest(t *testing.T) {
	r := newBookingRouter(newFakeBookingRepo())

	w := doJSON(t, r, http.MethodDelete, "/api/bookings", "patient-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
