package dto

import (
	"time"

	domain "github.com/styllus/barber-site/internal/domain/appointment"
	"github.com/styllus/barber-site/internal/models"
)

// AppointmentListDTO é a projeção de exibição da listagem do painel. A
// resolução do serviço para nome acontece aqui, na borda — o store guarda
// só o id.
type AppointmentListDTO struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"client_name"`
	ClientPhone   string    `json:"client_phone"`
	ServiceID     string    `json:"service_id"`
	ServiceName   string    `json:"service_name,omitempty"`
	PreferredDate string    `json:"preferred_date"` // YYYY-MM-DD
	PreferredTime string    `json:"preferred_time"`
	Note          string    `json:"note,omitempty"`
	Origin        string    `json:"origin"`
	OriginLabel   string    `json:"origin_label"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromAppointment(ap models.Appointment, serviceName string) AppointmentListDTO {
	return AppointmentListDTO{
		ID:            ap.ID,
		ClientName:    ap.ClientName,
		ClientPhone:   ap.ClientPhone,
		ServiceID:     ap.ServiceID,
		ServiceName:   serviceName,
		PreferredDate: ap.PreferredDate.Format("2006-01-02"),
		PreferredTime: ap.PreferredTime,
		Note:          ap.Note,
		Origin:        ap.Origin,
		OriginLabel:   domain.OriginLabels[domain.Origin(ap.Origin)],
		Status:        ap.Status,
		StatusLabel:   domain.StatusLabels[domain.Status(ap.Status)],
		CreatedAt:     ap.CreatedAt,
		UpdatedAt:     ap.UpdatedAt,
	}
}
