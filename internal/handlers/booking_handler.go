package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dcarehealth/transport-api/internal/httperr"
	"github.com/dcarehealth/transport-api/internal/middleware"
	ucBooking "github.com/dcarehealth/transport-api/internal/usecase/booking"
)

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookings
	cancelUC *ucBooking.CancelBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
	cancelUC *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		cancelUC: cancelUC,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	ServiceType     string     `json:"serviceType" binding:"required"`
	PickupLocation  string     `json:"pickupLocation" binding:"required"`
	DropoffLocation string     `json:"dropoffLocation" binding:"required"`
	ScheduledTime   *time.Time `json:"scheduledTime"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		PatientID:       patientID,
		ServiceType:     req.ServiceType,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		ScheduledTime:   req.ScheduledTime,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_booking", "Error creating booking")
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(string)

	bookings, err := h.listUC.Execute(c.Request.Context(), patientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error fetching bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(string)

	bookingID := c.Query("id")
	if bookingID == "" {
		httperr.BadRequest(c, "missing_booking_id", "Booking id is required")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), patientID, bookingID); err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found")
			return
		}
		httperr.Internal(c, "failed_to_cancel_booking", "Error cancelling booking")
		return
	}

	c.Status(http.StatusNoContent)
}
