package schedule

import (
	"time"

	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Every action validates the guard, then mutates the record in place.
// Transition timestamps are stamped exactly once.

func Start(sc *models.Schedule, now time.Time) error {
	if err := CanStart(Status(sc.Status)); err != nil {
		return err
	}

	sc.Status = string(StatusInProgress)
	sc.InProgressAt = &now
	return nil
}

func Complete(sc *models.Schedule, now time.Time) error {
	if err := CanComplete(Status(sc.Status)); err != nil {
		return err
	}

	sc.Status = string(StatusCompleted)
	sc.CompletedAt = &now
	return nil
}

func Cancel(sc *models.Schedule, now time.Time) error {
	if err := CanCancel(Status(sc.Status)); err != nil {
		return err
	}

	sc.Status = string(StatusCancelled)
	return nil
}

// Pay confirms payment. Method and amount are set together, once.
func Pay(sc *models.Schedule, method string, amount float64, now time.Time) error {
	if err := CanPay(Status(sc.Status)); err != nil {
		return err
	}
	if method == "" {
		return httperr.Validation("payment_method_required")
	}
	if !ValidPaymentMethod(method) {
		return httperr.Validation("invalid_payment_method")
	}

	sc.Status = string(StatusPaid)
	sc.PaymentStatus = PaymentStatusPaid
	sc.PaymentMethod = method
	sc.AmountPaid = &amount
	sc.PaidAt = &now
	return nil
}
