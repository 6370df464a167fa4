package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

func TestTransitionGuards(t *testing.T) {
	tests := []struct {
		name    string
		guard   func(Status) error
		allowed []Status
	}{
		{"start", CanStart, []Status{StatusScheduled}},
		{"complete", CanComplete, []Status{StatusInProgress}},
		{"cancel", CanCancel, []Status{StatusScheduled, StatusInProgress}},
		{"pay", CanPay, []Status{StatusInProgress, StatusCompleted}},
		{"delete", CanDelete, []Status{StatusScheduled, StatusInProgress, StatusCancelled}},
	}

	all := []Status{
		StatusScheduled, StatusInProgress,
		StatusCompleted, StatusPaid, StatusCancelled,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, st := range all {
				err := tt.guard(st)

				ok := false
				for _, a := range tt.allowed {
					if st == a {
						ok = true
					}
				}

				if ok {
					assert.NoError(t, err, string(st))
				} else {
					assert.Error(t, err, string(st))
					assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
				}
			}
		})
	}
}

func TestStartStampsOnce(t *testing.T) {
	now := time.Now()
	sc := &models.Schedule{Status: string(StatusScheduled)}

	require.NoError(t, Start(sc, now))
	assert.Equal(t, string(StatusInProgress), sc.Status)
	require.NotNil(t, sc.InProgressAt)
	assert.Equal(t, now, *sc.InProgressAt)

	// second start is rejected, timestamp untouched
	err := Start(sc, now.Add(time.Hour))
	assert.True(t, httperr.IsBusiness(err, "only_scheduled_can_start"))
	assert.Equal(t, now, *sc.InProgressAt)
}

func TestCompleteRequiresInProgress(t *testing.T) {
	sc := &models.Schedule{Status: string(StatusScheduled)}
	err := Complete(sc, time.Now())
	assert.True(t, httperr.IsBusiness(err, "only_in_progress_can_complete"))

	sc.Status = string(StatusInProgress)
	require.NoError(t, Complete(sc, time.Now()))
	assert.Equal(t, string(StatusCompleted), sc.Status)
	assert.NotNil(t, sc.CompletedAt)
}

func TestCancelTwice(t *testing.T) {
	sc := &models.Schedule{Status: string(StatusScheduled)}

	require.NoError(t, Cancel(sc, time.Now()))
	assert.Equal(t, string(StatusCancelled), sc.Status)

	err := Cancel(sc, time.Now())
	assert.True(t, httperr.IsKind(err, httperr.KindInvalidTransition))
	assert.Equal(t, string(StatusCancelled), sc.Status)
}

func TestPay(t *testing.T) {
	now := time.Now()

	sc := &models.Schedule{Status: string(StatusCompleted)}
	require.NoError(t, Pay(sc, PaymentPix, 45.0, now))

	assert.Equal(t, string(StatusPaid), sc.Status)
	assert.Equal(t, PaymentStatusPaid, sc.PaymentStatus)
	assert.Equal(t, PaymentPix, sc.PaymentMethod)
	require.NotNil(t, sc.AmountPaid)
	assert.Equal(t, 45.0, *sc.AmountPaid)
	assert.NotNil(t, sc.PaidAt)

	// paying while still in progress is allowed
	sc = &models.Schedule{Status: string(StatusInProgress)}
	assert.NoError(t, Pay(sc, PaymentDinheiro, 30.0, now))

	// paying before any work started is not
	sc = &models.Schedule{Status: string(StatusScheduled)}
	err := Pay(sc, PaymentPix, 45.0, now)
	assert.True(t, httperr.IsBusiness(err, "payment_requires_completion"))

	sc = &models.Schedule{Status: string(StatusCompleted)}
	err = Pay(sc, "", 45.0, now)
	assert.True(t, httperr.IsBusiness(err, "payment_method_required"))

	err = Pay(sc, "cheque", 45.0, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))
}

func TestInitialPaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentStatusUnpaid, InitialPaymentStatus(PaymentDinheiro))
	assert.Equal(t, PaymentStatusPending, InitialPaymentStatus(PaymentPix))
	assert.Equal(t, PaymentStatusPending, InitialPaymentStatus(PaymentCartao))
}
