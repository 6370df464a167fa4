package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreatePortalScheduleInput struct {
	// ClientID is the authenticated customer's client record.
	ClientID      uint
	CustomerEmail string

	VehicleID uint
	ServiceID uint

	Date string
	Time string

	Notes         string
	PaymentMethod string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePortalSchedule books through the self-service portal. The
// vehicle must belong to the authenticated customer; the slot only
// has to be in the future and under the concurrency capacity.
// Unlike the staff channel there is no weekday or business-hours
// restriction and no duration-overlap test: the two channels carry
// deliberately different guarantees.
type CreatePortalSchedule struct {
	repo     domain.Repository
	settings ConfigSource
	payments PaymentGateway
	audit    *audit.Dispatcher
	log      *logrus.Logger
}

func NewCreatePortalSchedule(
	repo domain.Repository,
	settings ConfigSource,
	payments PaymentGateway,
	auditDisp *audit.Dispatcher,
	log *logrus.Logger,
) *CreatePortalSchedule {
	return &CreatePortalSchedule{
		repo:     repo,
		settings: settings,
		payments: payments,
		audit:    auditDisp,
		log:      log,
	}
}

func (uc *CreatePortalSchedule) Execute(
	ctx context.Context,
	in CreatePortalScheduleInput,
) (*models.Schedule, error) {

	start, err := parseSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	vehicle, err := uc.repo.GetActiveVehicle(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.ClientID != in.ClientID {
		return nil, httperr.Ownership("vehicle_not_owned")
	}

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if err := ensureFuture(start); err != nil {
		return nil, err
	}

	var payStatus, payMethod string
	if in.PaymentMethod != "" {
		if !domain.ValidPaymentMethod(in.PaymentMethod) {
			return nil, httperr.Validation("invalid_payment_method")
		}
		payMethod = in.PaymentMethod
		payStatus = domain.InitialPaymentStatus(payMethod)
	}

	cfg, err := uc.settings.BusinessConfig(ctx)
	if err != nil {
		return nil, err
	}

	sc := &models.Schedule{
		Code:          uuid.NewString(),
		ClientID:      in.ClientID,
		VehicleID:     in.VehicleID,
		ServiceID:     in.ServiceID,
		ScheduledDate: in.Date,
		ScheduledTime: in.Time,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
		PaymentStatus: payStatus,
		PaymentMethod: payMethod,
		CreatedBy:     in.ClientID,
		Origin:        models.OriginPortal,
	}

	if err := uc.repo.CreateInSlot(ctx, sc, cfg.MaxConcurrent); err != nil {
		return nil, err
	}

	// Pix intents go to the gateway; a gateway failure leaves the
	// booking pending and is settled on site instead.
	if payMethod == domain.PaymentPix && uc.payments != nil {
		desc := fmt.Sprintf("%s - %s %s", svc.Name, in.Date, in.Time)
		if _, err := uc.payments.CreatePixIntent(ctx, svc.Price, desc, in.CustomerEmail); err != nil {
			uc.log.WithError(err).WithField("schedule_id", sc.ID).
				Warn("pix intent failed")
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionScheduleCreated,
		Entity:   "schedule",
		EntityID: &sc.ID,
		Metadata: map[string]any{"origin": models.OriginPortal, "client_id": in.ClientID},
	})

	return sc, nil
}
