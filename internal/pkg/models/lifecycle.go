package models

// BookingAction names an input to the booking state machine
type BookingAction string

const (
	ActionConfirmPayment         BookingAction = "confirm_payment"
	ActionExpirePayment          BookingAction = "expire_payment"
	ActionAccept                 BookingAction = "accept"
	ActionAcceptPendingInsurance BookingAction = "accept_pending_insurance"
	ActionAutoActivate           BookingAction = "auto_activate"
	ActionReject                 BookingAction = "reject"
	ActionExpireApproval         BookingAction = "expire_approval"
	ActionConfirmInsurance       BookingAction = "confirm_insurance"
	ActionExpireInsurance        BookingAction = "expire_insurance"
	ActionActivate               BookingAction = "activate"
	ActionFinish                 BookingAction = "finish"
	ActionMarkOverdue            BookingAction = "mark_overdue"
	ActionCancel                 BookingAction = "cancel"
)

type transitionKey struct {
	from   BookingStatus
	action BookingAction
}

var transitions = map[transitionKey]BookingStatus{
	{BookingStatusPendingPayment, ActionConfirmPayment}: BookingStatusPendingPartnerApproval,
	{BookingStatusPendingPayment, ActionExpirePayment}:  BookingStatusPaymentExpired,

	{BookingStatusPendingPartnerApproval, ActionAccept}:                 BookingStatusPartnerAccepted,
	{BookingStatusPendingPartnerApproval, ActionAcceptPendingInsurance}: BookingStatusPendingInsuranceUpload,
	{BookingStatusPendingPartnerApproval, ActionAutoActivate}:           BookingStatusActive,
	{BookingStatusPendingPartnerApproval, ActionReject}:                 BookingStatusPartnerRejected,
	{BookingStatusPendingPartnerApproval, ActionExpireApproval}:         BookingStatusAutoRejected,

	{BookingStatusPendingInsuranceUpload, ActionConfirmInsurance}: BookingStatusPartnerAccepted,
	{BookingStatusPendingInsuranceUpload, ActionAutoActivate}:     BookingStatusActive,
	{BookingStatusPendingInsuranceUpload, ActionExpireInsurance}:  BookingStatusInsuranceExpired,

	{BookingStatusPartnerAccepted, ActionActivate}: BookingStatusActive,
	{BookingStatusPartnerAccepted, ActionFinish}:   BookingStatusCompleted,

	{BookingStatusActive, ActionFinish}:          BookingStatusCompleted,
	{BookingStatusInProgress, ActionFinish}:      BookingStatusCompleted,
	{BookingStatusActive, ActionMarkOverdue}:     BookingStatusOverdue,
	{BookingStatusInProgress, ActionMarkOverdue}: BookingStatusOverdue,
}

// NextStatus returns the target status for the action, or false when the pair is not allowed.
// Cancel is accepted from every non-terminal status.
func NextStatus(from BookingStatus, action BookingAction) (BookingStatus, bool) {
	if action == ActionCancel {
		if from.IsTerminal() {
			return "", false
		}
		return BookingStatusCancelled, true
	}
	to, ok := transitions[transitionKey{from, action}]
	return to, ok
}
