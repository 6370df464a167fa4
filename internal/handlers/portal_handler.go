package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/LavaJatoPro/carwash-scheduler/internal/dto"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httpresp"
	"github.com/LavaJatoPro/carwash-scheduler/internal/middleware"
	ucschedule "github.com/LavaJatoPro/carwash-scheduler/internal/usecase/schedule"
)

// PortalHandler serves the authenticated customer's self-service
// booking surface.
type PortalHandler struct {
	createUC     *ucschedule.CreatePortalSchedule
	rescheduleUC *ucschedule.ReschedulePortal
	suggestedUC  *ucschedule.SuggestedSlots
	historyUC    *ucschedule.ClientHistory
	lastUC       *ucschedule.LastSchedule
}

func NewPortalHandler(
	createUC *ucschedule.CreatePortalSchedule,
	rescheduleUC *ucschedule.ReschedulePortal,
	suggestedUC *ucschedule.SuggestedSlots,
	historyUC *ucschedule.ClientHistory,
	lastUC *ucschedule.LastSchedule,
) *PortalHandler {
	return &PortalHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		suggestedUC:  suggestedUC,
		historyUC:    historyUC,
		lastUC:       lastUC,
	}
}

// --------- Requests ---------

type PortalScheduleRequest struct {
	VehicleID     uint   `json:"vehicle_id" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

type PortalRescheduleRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
}

// --------- Helpers ---------

func portalClientID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextClientID).(uint)
}

// --------- Handlers ---------

func (h *PortalHandler) CreateSchedule(c *gin.Context) {
	var req PortalScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados do agendamento incompletos.")
		return
	}

	sc, err := h.createUC.Execute(c.Request.Context(), ucschedule.CreatePortalScheduleInput{
		ClientID:      portalClientID(c),
		VehicleID:     req.VehicleID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"id": sc.ID, "code": sc.Code})
}

func (h *PortalHandler) Reschedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req PortalRescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nova data e hora são obrigatórias.")
		return
	}

	sc, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		portalClientID(c),
		id,
		req.NewDate,
		req.NewTime,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"id":             sc.ID,
		"scheduled_date": sc.ScheduledDate,
		"scheduled_time": sc.ScheduledTime,
	})
}

func (h *PortalHandler) SuggestedSlots(c *gin.Context) {
	date, slots, err := h.suggestedUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"date": date, "slots": slots})
}

func (h *PortalHandler) History(c *gin.Context) {
	schedules, err := h.historyUC.Execute(c.Request.Context(), portalClientID(c))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, dto.FromSchedules(schedules))
}

func (h *PortalHandler) LastSchedule(c *gin.Context) {
	sc, err := h.lastUC.Execute(c.Request.Context(), portalClientID(c))
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	if sc == nil {
		httpresp.OK(c, gin.H{"last": nil})
		return
	}

	httpresp.OK(c, gin.H{"last": gin.H{
		"id":             sc.ID,
		"vehicle_id":     sc.VehicleID,
		"service_id":     sc.ServiceID,
		"scheduled_date": sc.ScheduledDate,
		"scheduled_time": sc.ScheduledTime,
	}})
}
