package constants

// NATS Subjects
const (
	// Notification dispatcher (push + email fan-out is handled downstream)
	SubjectNotificationPush = "notification.push"
	SubjectNotificationMail = "notification.mail"

	// Match lifecycle events
	SubjectMatchProposed  = "match.proposed"
	SubjectMatchAccepted  = "match.accepted"
	SubjectMatchDeclined  = "match.declined"
	SubjectMatchPickedUp  = "match.picked_up"
	SubjectMatchDelivered = "match.delivered"

	// Payment events
	SubjectPaymentCaptured = "payment.captured"
	SubjectEscrowReleased  = "payment.escrow_released"

	// Posting events
	SubjectTripPosted    = "trip.posted"
	SubjectRequestPosted = "delivery.request_posted"
)
