package constants

// NATS Subjects
const (
	// Deadline scheduler
	SubjectDeadlineCheck = "booking.deadline.check"

	// Booking lifecycle events, suffixed with the action (booking.accept, booking.cancel, ...)
	SubjectBookingEventPrefix = "booking."

	// Outbox relay fan-out
	SubjectNotificationCreated = "notification.created"

	// Payment rail
	SubjectRefundRequested = "payment.refund.requested"
)

// BookingEventSubject returns the subject a lifecycle action is published on
func BookingEventSubject(action string) string {
	return SubjectBookingEventPrefix + action
}
