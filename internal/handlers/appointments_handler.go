package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luciddatattoo/studio-scheduler/internal/httperr"
	"github.com/luciddatattoo/studio-scheduler/internal/middleware"
	ucAppointment "github.com/luciddatattoo/studio-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentsHandler struct {
	listUpcomingUC *ucAppointment.ListUpcoming
	cancelUC       *ucAppointment.CancelAppointment
	updateUC       *ucAppointment.UpdateAppointment
}

func NewAppointmentsHandler(
	listUpcomingUC *ucAppointment.ListUpcoming,
	cancelUC *ucAppointment.CancelAppointment,
	updateUC *ucAppointment.UpdateAppointment,
) *AppointmentsHandler {
	return &AppointmentsHandler{
		listUpcomingUC: listUpcomingUC,
		cancelUC:       cancelUC,
		updateUC:       updateUC,
	}
}

// Campos ponteiro: ausente ≠ zero. "notes": "" limpa as notas;
// omitir "notes" não mexe nelas.
type UpdateAppointmentRequest struct {
	Date            *string `json:"date"`       // YYYY-MM-DD
	StartTime       *string `json:"start_time"` // HH:MM
	DurationMinutes *int    `json:"duration_minutes"`
	Notes           *string `json:"notes"`
}

func writeAppointmentError(c *gin.Context, err error) {
	if httperr.IsExclusionConflict(err) {
		httperr.Conflict(c, "time_conflict", "Conflito com outra cita.")
		return
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "appointment_not_found":
		httperr.NotFound(c, code, "Cita não encontrada.")
	case "time_conflict":
		httperr.Conflict(c, code, "Conflito com outra cita.")
	default:
		httperr.BadRequest(c, code, "Dados inválidos.")
	}
}

func appointmentIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST (agrupado por data, do dia atual em diante)
// ======================================================

func (h *AppointmentsHandler) ListUpcoming(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	grouped, err := h.listUpcomingUC.Execute(c.Request.Context(), artistID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar citas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": grouped})
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentsHandler) Cancel(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), artistID, id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// UPDATE (remarcação e/ou notas)
// ======================================================

func (h *AppointmentsHandler) Update(c *gin.Context) {
	artistID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := appointmentIDParam(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), artistID, id, ucAppointment.UpdateAppointmentInput{
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
