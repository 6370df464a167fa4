package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httperr"
	"github.com/LavaJatoPro/carwash-scheduler/internal/httpresp"
	"github.com/LavaJatoPro/carwash-scheduler/internal/settings"
)

// SettingsHandler exposes the mutable scheduling configuration.
// Changes apply to subsequent requests only; appointments validated
// under the old configuration are not revisited.
type SettingsHandler struct {
	store *settings.Store
	audit *audit.Dispatcher
}

func NewSettingsHandler(store *settings.Store, auditDisp *audit.Dispatcher) *SettingsHandler {
	return &SettingsHandler{store: store, audit: auditDisp}
}

type UpdateSettingsRequest struct {
	BusinessHoursStart string `json:"business_hours_start"`
	BusinessHoursEnd   string `json:"business_hours_end"`
	IntervalMinutes    int    `json:"appointment_interval"`
	MaxConcurrent      int    `json:"max_concurrent_appointments"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.store.BusinessConfig(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "settings_error", "Erro ao carregar configurações.")
		return
	}

	httpresp.OK(c, gin.H{
		"business_hours_start":        cfg.HoursStart,
		"business_hours_end":          cfg.HoursEnd,
		"appointment_interval":        cfg.IntervalMinutes,
		"max_concurrent_appointments": cfg.MaxConcurrent,
	})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cfg, err := h.store.BusinessConfig(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "settings_error", "Erro ao carregar configurações.")
		return
	}

	if req.BusinessHoursStart != "" {
		cfg.HoursStart = req.BusinessHoursStart
	}
	if req.BusinessHoursEnd != "" {
		cfg.HoursEnd = req.BusinessHoursEnd
	}
	if req.IntervalMinutes != 0 {
		cfg.IntervalMinutes = req.IntervalMinutes
	}
	if req.MaxConcurrent != 0 {
		cfg.MaxConcurrent = req.MaxConcurrent
	}

	if err := cfg.Validate(); err != nil {
		httperr.WriteError(c, err)
		return
	}

	ctx := c.Request.Context()
	updates := map[string]string{
		settings.KeyHoursStart:    cfg.HoursStart,
		settings.KeyHoursEnd:      cfg.HoursEnd,
		settings.KeyInterval:      strconv.Itoa(cfg.IntervalMinutes),
		settings.KeyMaxConcurrent: strconv.Itoa(cfg.MaxConcurrent),
	}
	for key, value := range updates {
		if err := h.store.Update(ctx, key, value); err != nil {
			httperr.Internal(c, "settings_error", "Erro ao salvar configurações.")
			return
		}
	}

	userID := staffID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   audit.ActionSettingsUpdated,
		Entity:   "settings",
		Metadata: updates,
	})

	h.Get(c)
}
