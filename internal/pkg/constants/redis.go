package constants

// Redis key formats
const (
	// Deadline sweeper
	KeyReminderSent  = "booking:reminder:%s:%s" // Format: booking:reminder:{booking_id}:{kind}
	KeySchedulerLock = "scheduler:deadline:lock"

	// Rate Limiting
	KeyRateLimitIP = "rate:ip"
)

// Reminder kinds
const (
	ReminderPartnerApproval = "partner_approval"
	ReminderPayment         = "payment"
	ReminderInsurance       = "insurance"
)
