package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	ucBooking "github.com/luciddatattoo/studio-scheduler/internal/usecase/booking"
	"github.com/luciddatattoo/studio-scheduler/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicBookingHandler struct {
	linkInfoUC *ucBooking.GetLinkInfo
	datesUC    *ucBooking.GetAvailableDates
	timesUC    *ucBooking.GetAvailableTimes
	bookUC     *ucBooking.BookAppointment
}

func NewPublicBookingHandler(
	linkInfoUC *ucBooking.GetLinkInfo,
	datesUC *ucBooking.GetAvailableDates,
	timesUC *ucBooking.GetAvailableTimes,
	bookUC *ucBooking.BookAppointment,
) *PublicBookingHandler {
	return &PublicBookingHandler{
		linkInfoUC: linkInfoUC,
		datesUC:    datesUC,
		timesUC:    timesUC,
		bookUC:     bookUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM

	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientDni   string `json:"client_dni" binding:"required"`
}

////////////////////////////////////////////////////////
// ERRO → HTTP
////////////////////////////////////////////////////////

// writePublicError traduz erro de negócio para o status que o
// formulário público sabe tratar: 410 manda pedir link novo,
// 409 manda rebuscar a disponibilidade.
func writePublicError(c *gin.Context, err error) {
	if httperr.IsExclusionConflict(err) {
		httperr.Conflict(c, "time_conflict", "Esse horário acabou de ser reservado.")
		return
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "link_not_found":
		httperr.NotFound(c, code, "Link de agendamento não encontrado.")
	case "link_gone":
		httperr.Gone(c, code, "Esse link já foi usado ou expirou.")
	case "time_conflict":
		httperr.Conflict(c, code, "Esse horário acabou de ser reservado.")
	default:
		httperr.BadRequest(c, code, "Dados de reserva inválidos.")
	}
}

////////////////////////////////////////////////////////
// LINK INFO
////////////////////////////////////////////////////////

func (h *PublicBookingHandler) LinkInfo(c *gin.Context) {
	token := c.Param("token")

	info, err := h.linkInfoUC.Execute(c.Request.Context(), token)
	if err != nil {
		writePublicError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

////////////////////////////////////////////////////////
// DISPONIBILIDADE
////////////////////////////////////////////////////////

func (h *PublicBookingHandler) AvailableDates(c *gin.Context) {
	token := c.Param("token")

	dates, err := h.datesUC.Execute(c.Request.Context(), token)
	if err != nil {
		writePublicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

func (h *PublicBookingHandler) AvailableTimes(c *gin.Context) {
	token := c.Param("token")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	times, err := h.timesUC.Execute(c.Request.Context(), token, dateStr)
	if err != nil {
		writePublicError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"times": times})
}

////////////////////////////////////////////////////////
// RESERVA
////////////////////////////////////////////////////////

func (h *PublicBookingHandler) Book(c *gin.Context) {
	token := c.Param("token")

	var req PublicBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsValidDNI(req.ClientDni) {
		httperr.BadRequest(c, "invalid_dni", "DNI inválido.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		Token:       token,
		Date:        req.Date,
		StartTime:   req.StartTime,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientDni:   req.ClientDni,
	})
	if err != nil {
		writePublicError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": gin.H{
			"id":                 ap.ID,
			"date":               ap.Date.Format("2006-01-02"),
			"start_time":         ap.StartTime,
			"end_time":           ap.EndTime,
			"duration_minutes":   ap.DurationMinutes,
			"tattoo_description": ap.TattooDescription,
			"status":             ap.Status,
		},
	})
}
