package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/styllus/barber-site/internal/catalog"
	domain "github.com/styllus/barber-site/internal/domain/appointment"
	"github.com/styllus/barber-site/internal/httperr"
	"github.com/styllus/barber-site/internal/httpresp"
	"github.com/styllus/barber-site/internal/schedule"
	"github.com/styllus/barber-site/internal/timezone"
	ucAppointment "github.com/styllus/barber-site/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	createUC *ucAppointment.CreateAppointment
}

func NewPublicHandler(createUC *ucAppointment.CreateAppointment) *PublicHandler {
	return &PublicHandler{createUC: createUC}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Note        string `json:"note"`
}

type calendarDayDTO struct {
	Day        int    `json:"day"`
	Date       string `json:"date,omitempty"`
	Selectable bool   `json:"selectable"`
}

////////////////////////////////////////////////////////
// CATÁLOGOS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, catalog.Services())
}

func (h *PublicHandler) ListGallery(c *gin.Context) {
	httpresp.List(c, catalog.Gallery())
}

// ListTimeSlots devolve o catálogo fixo de horários. O parâmetro ?date= é
// aceito mas não altera a lista — disponibilidade real por data fica para
// quando houver agenda de verdade.
func (h *PublicHandler) ListTimeSlots(c *gin.Context) {
	httpresp.List(c, catalog.TimeSlots())
}

////////////////////////////////////////////////////////
// CALENDÁRIO (grade do seletor de data)
////////////////////////////////////////////////////////

func (h *PublicHandler) Calendar(c *gin.Context) {
	now := timezone.Now()

	year := now.Year()
	month := int(now.Month())

	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 2000 || y > 2100 {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}
		year = y
	}

	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			httperr.BadRequest(c, "invalid_month", "Mês inválido.")
			return
		}
		month = m
	}

	loc := timezone.Location(timezone.DefaultTimezone)
	cells := schedule.MonthGrid(year, time.Month(month), loc)

	days := make([]calendarDayDTO, 0, len(cells))
	for _, cell := range cells {
		if cell.Date == nil {
			days = append(days, calendarDayDTO{})
			continue
		}
		days = append(days, calendarDayDTO{
			Day:        cell.Day,
			Date:       cell.Date.Format(dateLayout),
			Selectable: schedule.DaySelectable(*cell.Date, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"year":        year,
		"month":       month,
		"days":        days,
		"can_go_back": schedule.CanNavigateBack(year, time.Month(month), now),
	})
}

////////////////////////////////////////////////////////
// AGENDAMENTO PÚBLICO (origem site)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
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
		Origin:        domain.OriginSite,
		Actor:         string(domain.OriginSite),
	})

	c.JSON(http.StatusCreated, ap)
}
