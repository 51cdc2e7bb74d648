package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luciddatattoo/studio-scheduler/internal/middleware"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

type PushTokenRequest struct {
	PushToken string `json:"push_token" binding:"required"`
}

// UpdatePushToken registra o token do dispositivo da artista
// para avisos de nova reserva.
func (h *MeHandler) UpdatePushToken(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("push_token", req.PushToken).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_push_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
