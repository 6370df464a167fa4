package schedule

import "github.com/LavaJatoPro/carwash-scheduler/internal/httperr"

// ===============================
// Schedule Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusPaid       Status = "paid"
	StatusCancelled  Status = "cancelled"
)

// ActiveStatuses are the statuses that count against slot capacity.
var ActiveStatuses = []string{
	string(StatusScheduled),
	string(StatusInProgress),
}

func (s Status) Active() bool {
	return s == StatusScheduled || s == StatusInProgress
}

func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Transition guards
// ===============================

func CanStart(current Status) error {
	if current != StatusScheduled {
		return httperr.InvalidTransition("only_scheduled_can_start")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusInProgress {
		return httperr.InvalidTransition("only_in_progress_can_complete")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.Active() {
		return httperr.InvalidTransition("cannot_cancel")
	}
	return nil
}

// Payment is accepted after completion; paying straight from
// in_progress is also accepted.
func CanPay(current Status) error {
	if current != StatusCompleted && current != StatusInProgress {
		return httperr.InvalidTransition("payment_requires_completion")
	}
	return nil
}

func CanDelete(current Status) error {
	if current == StatusCompleted || current == StatusPaid {
		return httperr.InvalidTransition("cannot_delete_completed")
	}
	return nil
}

// ===============================
// Payment
// ===============================

const (
	PaymentPix      = "pix"
	PaymentCartao   = "cartao"
	PaymentDinheiro = "dinheiro"
)

const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

func ValidPaymentMethod(m string) bool {
	return m == PaymentPix || m == PaymentCartao || m == PaymentDinheiro
}

// InitialPaymentStatus is the payment-intent status recorded at portal
// booking time: cash settles on site, everything else stays pending.
func InitialPaymentStatus(method string) string {
	if method == PaymentDinheiro {
		return PaymentStatusUnpaid
	}
	return PaymentStatusPending
}
