package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusUrgentDispatch Status = "URGENT_DISPATCH"
	StatusPending        Status = "PENDING"
)

// ServiceTypeEmergency is the one service type with special meaning:
// it dispatches immediately instead of waiting in the queue.
const ServiceTypeEmergency = "EMERGENCY"

// InitialStatus is the only status assignment a booking ever gets.
// There is no state machine after creation; cancellation removes the
// row instead of transitioning it.
func InitialStatus(serviceType string) Status {
	if serviceType == ServiceTypeEmergency {
		return StatusUrgentDispatch
	}
	return StatusPending
}
