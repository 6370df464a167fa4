package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/LavaJatoPro/carwash-scheduler/internal/domain/schedule"
	"github.com/LavaJatoPro/carwash-scheduler/internal/dto"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httpresp"
	"github.com/LavaJatoPro/carwash-scheduler/internal/middleware"
	ucschedule "github.com/LavaJatoPro/carwash-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	createUC       *ucschedule.CreateStaffSchedule
	updateUC       *ucschedule.UpdateSchedule
	deleteUC       *ucschedule.DeleteSchedule
	startUC        *ucschedule.StartSchedule
	completeUC     *ucschedule.CompleteSchedule
	cancelUC       *ucschedule.CancelSchedule
	payUC          *ucschedule.PaySchedule
	listUC         *ucschedule.ListSchedules
	getUC          *ucschedule.GetSchedule
	availabilityUC *ucschedule.GetAvailability
	photoUC        *ucschedule.AttachPhoto
}

func NewScheduleHandler(
	createUC *ucschedule.CreateStaffSchedule,
	updateUC *ucschedule.UpdateSchedule,
	deleteUC *ucschedule.DeleteSchedule,
	startUC *ucschedule.StartSchedule,
	completeUC *ucschedule.CompleteSchedule,
	cancelUC *ucschedule.CancelSchedule,
	payUC *ucschedule.PaySchedule,
	listUC *ucschedule.ListSchedules,
	getUC *ucschedule.GetSchedule,
	availabilityUC *ucschedule.GetAvailability,
	photoUC *ucschedule.AttachPhoto,
) *ScheduleHandler {
	return &ScheduleHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		startUC:        startUC,
		completeUC:     completeUC,
		cancelUC:       cancelUC,
		payUC:          payUC,
		listUC:         listUC,
		getUC:          getUC,
		availabilityUC: availabilityUC,
		photoUC:        photoUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateScheduleRequest struct {
	ClientID  uint   `json:"client_id" binding:"required"`
	VehicleID uint   `json:"vehicle_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"scheduled_date" binding:"required"`
	Time      string `json:"scheduled_time" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateScheduleRequest struct {
	ClientID  uint    `json:"client_id"`
	VehicleID uint    `json:"vehicle_id"`
	ServiceID uint    `json:"service_id"`
	Date      string  `json:"scheduled_date"`
	Time      string  `json:"scheduled_time"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

type PayScheduleRequest struct {
	Method string   `json:"method" binding:"required"`
	Amount *float64 `json:"amount"`
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func staffID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// ======================================================
// CRUD
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Status:    c.Query("status"),
	}
	if v, err := strconv.ParseUint(c.Query("client_id"), 10, 32); err == nil {
		filter.ClientID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("vehicle_id"), 10, 32); err == nil {
		filter.VehicleID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("service_id"), 10, 32); err == nil {
		filter.ServiceID = uint(v)
	}

	schedules, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.List(c, dto.FromSchedules(schedules))
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sc, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.FromSchedule(*sc))
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sc, err := h.createUC.Execute(c.Request.Context(), ucschedule.CreateStaffScheduleInput{
		ClientID:  req.ClientID,
		VehicleID: req.VehicleID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		CreatedBy: staffID(c),
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, sc)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sc, err := h.updateUC.Execute(c.Request.Context(), ucschedule.UpdateScheduleInput{
		ID:        id,
		ClientID:  req.ClientID,
		VehicleID: req.VehicleID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
		Notes:     req.Notes,
		UpdatedBy: staffID(c),
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.FromSchedule(*sc))
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), staffID(c), id); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "schedule_deleted"})
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *ScheduleHandler) Start(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sc, err := h.startUC.Execute(c.Request.Context(), staffID(c), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, sc)
}

func (h *ScheduleHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sc, err := h.completeUC.Execute(c.Request.Context(), staffID(c), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, sc)
}

func (h *ScheduleHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	sc, err := h.cancelUC.Execute(c.Request.Context(), staffID(c), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, sc)
}

func (h *ScheduleHandler) Pay(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req PayScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "payment_method_required", "Informe o método de pagamento.")
		return
	}

	sc, err := h.payUC.Execute(c.Request.Context(), staffID(c), id, req.Method, req.Amount)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, sc)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ScheduleHandler) AvailableTimes(c *gin.Context) {
	date := c.Query("date")

	avail, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, avail)
}

// ======================================================
// PHOTO
// ======================================================

func (h *ScheduleHandler) UploadPhoto(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "photo_required", "Envie o arquivo no campo photo.")
		return
	}
	defer file.Close()

	sc, err := h.photoUC.Execute(c.Request.Context(), staffID(c), id, file)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"photo_url": sc.PhotoURL})
}
