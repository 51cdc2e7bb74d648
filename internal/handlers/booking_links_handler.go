package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luciddatattoo/studio-scheduler/internal/config"
	domain "github.com/luciddatattoo/studio-scheduler/internal/domain/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/httpresp"
	"github.com/luciddatattoo/studio-scheduler/internal/middleware"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
	ucBooking "github.com/luciddatattoo/studio-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingLinksHandler struct {
	db       *gorm.DB
	config   *config.Config
	createUC *ucBooking.CreateBookingLink
}

func NewBookingLinksHandler(
	db *gorm.DB,
	cfg *config.Config,
	createUC *ucBooking.CreateBookingLink,
) *BookingLinksHandler {
	return &BookingLinksHandler{
		db:       db,
		config:   cfg,
		createUC: createUC,
	}
}

// ======================================================
// DTOs
// ======================================================

type CreateBookingLinkRequest struct {
	TattooDescription string `json:"tattoo_description" binding:"required"`
	DurationMinutes   int    `json:"duration_minutes" binding:"required"`
}

type BookingLinkDTO struct {
	ID                uint      `json:"id"`
	Token             string    `json:"token"`
	BookingURL        string    `json:"booking_url"`
	TattooDescription string    `json:"tattoo_description"`
	DurationMinutes   int       `json:"duration_minutes"`
	State             string    `json:"state"` // active | used | expired
	ExpiresAt         time.Time `json:"expires_at"`
	CreatedAt         time.Time `json:"created_at"`
}

func (h *BookingLinksHandler) toDTO(link *models.BookingLink, now time.Time) BookingLinkDTO {
	return BookingLinkDTO{
		ID:                link.ID,
		Token:             link.Token,
		BookingURL:        fmt.Sprintf("%s/book/%s", h.config.SiteBaseURL, link.Token),
		TattooDescription: link.TattooDescription,
		DurationMinutes:   link.DurationMinutes,
		State:             domain.LinkState(link, now),
		ExpiresAt:         link.ExpiresAt,
		CreatedAt:         link.CreatedAt,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingLinksHandler) Create(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	link, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingLinkInput{
		ArtistID:          artistID,
		TattooDescription: req.TattooDescription,
		DurationMinutes:   req.DurationMinutes,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Dados do link inválidos.")
			return
		}
		httperr.Internal(c, "failed_to_create_link", "Erro ao criar o link.")
		return
	}

	httpresp.Created(c, h.toDTO(link, timezone.Now()))
}

// ======================================================
// LIST
// ======================================================

func (h *BookingLinksHandler) List(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	var links []models.BookingLink
	if err := h.db.
		Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&links).Error; err != nil {

		httperr.Internal(c, "failed_to_list_links", "Erro ao listar links.")
		return
	}

	now := timezone.Now()
	out := make([]BookingLinkDTO, 0, len(links))
	for i := range links {
		out = append(out, h.toDTO(&links[i], now))
	}

	httpresp.List(c, out)
}
