package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/styllus/barber-site/internal/catalog"
	domain "github.com/styllus/barber-site/internal/domain/appointment"
	"github.com/styllus/barber-site/internal/dto"
	"github.com/styllus/barber-site/internal/httperr"
	"github.com/styllus/barber-site/internal/httpresp"
	"github.com/styllus/barber-site/internal/middleware"
	"github.com/styllus/barber-site/internal/schedule"
	"github.com/styllus/barber-site/internal/timezone"
	ucAppointment "github.com/styllus/barber-site/internal/usecase/appointment"
	"github.com/styllus/barber-site/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo     domain.Repository
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Note        string `json:"note"`
}

// UpdateAppointmentRequest só aplica os campos presentes no corpo: chave
// ausente vira ponteiro nil e o valor atual é preservado.
type UpdateAppointmentRequest struct {
	ClientName  *string `json:"client_name"`
	ClientPhone *string `json:"client_phone"`
	ServiceID   *string `json:"service_id"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Note        *string `json:"note"`
	Status      *string `json:"status"`
}

// ======================================================
// CREATE (painel, origem admin)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserName).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := validateBooking(req.ClientPhone, req.Date, req.Time)
	if err != nil {
		code := businessCode(err)
		httperr.BadRequest(c, code, bookingErrorMessage(code))
		return
	}

	ap := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ServiceID:     req.ServiceID,
		PreferredDate: date,
		PreferredTime: req.Time,
		Note:          req.Note,
		Origin:        domain.OriginAdmin,
		Actor:         actor,
	})

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST (filtro de status ∩ busca textual)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	status := c.DefaultQuery("status", domain.FilterAll)
	if status != domain.FilterAll && !domain.Status(status).IsValid() {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	aps := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		Status: status,
		Query:  c.Query("query"),
	})

	out := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		name := ""
		if svc, ok := catalog.ServiceByID(ap.ServiceID); ok {
			name = svc.Name
		}
		out = append(out, dto.FromAppointment(ap, name))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  out,
		"total": len(out),
	})
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if ap == nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE (merge parcial)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserName).(string)
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucAppointment.UpdateAppointmentInput{
		ClientName: req.ClientName,
		ServiceID:  req.ServiceID,
		Note:       req.Note,
		Actor:      actor,
	}

	if req.ClientPhone != nil {
		if !validators.IsPhoneValid(*req.ClientPhone) {
			httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
			return
		}
		in.ClientPhone = req.ClientPhone
	}

	if req.Date != nil {
		date, err := parseBookingDate(*req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.PreferredDate = &date
	}

	if req.Time != nil {
		if !isValidTimeOfDay(*req.Time) {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.PreferredTime = req.Time
	}

	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !status.IsValid() {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		in.Status = &status
	}

	ap, ok := h.updateUC.Execute(c.Request.Context(), id, in)
	if !ok {
		// para o store é um no-op documentado; para o HTTP, ausência é 404
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserName).(string)

	// remoção é incondicional e id desconhecido é no-op: 204 nos dois casos
	h.deleteUC.Execute(c.Request.Context(), c.Param("id"), actor)
	c.Status(http.StatusNoContent)
}

// ======================================================
// VALIDAÇÃO DE FORMULÁRIO (camada de apresentação)
// ======================================================

// validateBooking aplica as regras do formulário: telefone com formato
// plausível, data elegível (não passada, não domingo) e horário existente e
// disponível no catálogo fixo. Nada disso vive no store.
func validateBooking(phone, dateStr, timeStr string) (time.Time, error) {
	if !validators.IsPhoneValid(phone) {
		return time.Time{}, httperr.ErrBusiness("invalid_phone")
	}

	date, err := parseBookingDate(dateStr)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !isValidTimeOfDay(timeStr) {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !schedule.DaySelectable(date, timezone.Now()) {
		return time.Time{}, httperr.ErrBusiness("day_not_selectable")
	}

	if !schedule.SlotAvailable(catalog.TimeSlots(), timeStr) {
		return time.Time{}, httperr.ErrBusiness("slot_unavailable")
	}

	return date, nil
}

func businessCode(err error) string {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return "invalid_request"
}

func bookingErrorMessage(code string) string {
	switch code {
	case "invalid_phone":
		return "Telefone inválido."
	case "day_not_selectable":
		return "Este dia não está disponível para agendamento."
	case "slot_unavailable":
		return "Este horário não está disponível."
	default:
		return "Data ou hora inválida."
	}
}
