package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luciddatattoo/studio-scheduler/internal/cache"
	"github.com/luciddatattoo/studio-scheduler/internal/middleware"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	cache *cache.Availability
}

func NewWorkingHoursHandler(db *gorm.DB, availCache *cache.Availability) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, cache: availCache}
}

type WorkingPeriodConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Periods []WorkingPeriodConfig `json:"periods" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	var hours []models.WorkingHours
	if err := h.db.
		Where("artist_id = ?", artistID).
		Order("weekday ASC, start_time ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_working_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update substitui a semana inteira de uma vez: apaga e recria
// dentro da mesma transação. Pode haver mais de um período no
// mesmo dia (turnos separados).
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.WorkingHours
	for _, p := range req.Periods {
		if p.Active && !validPeriod(p.StartTime, p.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_period"})
			return
		}

		toCreate = append(toCreate, models.WorkingHours{
			ArtistID:  artistID,
			Weekday:   p.Weekday,
			Active:    p.Active,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", artistID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_working_hours"})
		return
	}

	// a agenda mudou, o calendário público precisa recalcular
	h.cache.Invalidate(c.Request.Context(), artistID)

	writeAudit(h.db, artistID, &artistID, "working_hours_updated", "working_hours", nil, gin.H{
		"periods": len(toCreate),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
