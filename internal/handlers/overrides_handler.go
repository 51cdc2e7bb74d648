package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luciddatattoo/studio-scheduler/internal/cache"
	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/httpresp"
	"github.com/luciddatattoo/studio-scheduler/internal/middleware"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type OverridesHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewOverridesHandler(db *gorm.DB, availCache *cache.Availability) *OverridesHandler {
	return &OverridesHandler{db: db, cache: availCache}
}

type CreateOverrideRequest struct {
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime   *string `json:"start_time"`              // HH:MM, opcional
	EndTime     *string `json:"end_time"`                // HH:MM, opcional
	Kind        string  `json:"type" binding:"required"`
	Description string  `json:"description"`
}

func validOverrideKind(kind string) bool {
	switch kind {
	case models.OverrideUnavailable,
		models.OverrideVacation,
		models.OverridePersonalAppointment:
		return true
	}
	return false
}

// ======================================================
// LIST (só exceções futuras — as passadas não interessam
// mais ao calendário)
// ======================================================

func (h *OverridesHandler) List(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	today := timezone.StartOfDay(timezone.Now()).Format("2006-01-02")

	var overrides []models.AvailabilityOverride
	if err := h.db.
		Where("artist_id = ? AND date >= ?", artistID, today).
		Order("date ASC").
		Find(&overrides).Error; err != nil {

		httperr.Internal(c, "failed_to_list_overrides", "Erro ao listar exceções.")
		return
	}

	httpresp.List(c, overrides)
}

// ======================================================
// CREATE
// ======================================================

func (h *OverridesHandler) Create(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validOverrideKind(req.Kind) {
		httperr.BadRequest(c, "invalid_override_type", "Tipo de exceção inválido.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// ou o dia inteiro (nenhum horário) ou um intervalo completo
	if (req.StartTime == nil) != (req.EndTime == nil) {
		httperr.BadRequest(c, "incomplete_period", "Informe início e fim, ou nenhum dos dois.")
		return
	}
	if req.StartTime != nil && !validPeriod(*req.StartTime, *req.EndTime) {
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return
	}

	override := models.AvailabilityOverride{
		ArtistID:    artistID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Kind:        req.Kind,
		Description: req.Description,
	}

	if err := h.db.Create(&override).Error; err != nil {
		httperr.Internal(c, "failed_to_create_override", "Erro ao criar exceção.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), artistID)

	writeAudit(h.db, artistID, &artistID, "override_created", "availability_override", &override.ID, gin.H{
		"date": req.Date,
		"type": req.Kind,
	})

	httpresp.Created(c, override)
}

// ======================================================
// DELETE
// ======================================================

func (h *OverridesHandler) Delete(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res := h.db.
		Where("id = ? AND artist_id = ?", id, artistID).
		Delete(&models.AvailabilityOverride{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_override", "Erro ao remover exceção.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "override_not_found", "Exceção não encontrada.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), artistID)

	overrideID := uint(id)
	writeAudit(h.db, artistID, &artistID, "override_deleted", "availability_override", &overrideID, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
