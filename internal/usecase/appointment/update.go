package appointment

import (
	"context"
	"time"

	"github.com/styllus/barber-site/internal/audit"
	domain "github.com/styllus/barber-site/internal/domain/appointment"
	"github.com/styllus/barber-site/internal/models"
	"github.com/styllus/barber-site/internal/timezone"
)

// UpdateAppointmentInput é um merge parcial: só os campos não-nil são
// aplicados sobre o registro existente. Ausência é um estado explícito
// (ponteiro nil), não uma convenção de valor zero.
type UpdateAppointmentInput struct {
	ClientName  *string
	ClientPhone *string
	ServiceID   *string

	PreferredDate *time.Time
	PreferredTime *string

	Note   *string
	Origin *domain.Origin
	Status *domain.Status

	Actor string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica o merge e renova updated_at. Id desconhecido é um no-op
// silencioso — escolha de design permissiva do contrato, não um erro.
// Retorna o registro atualizado e false quando nada foi feito.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in UpdateAppointmentInput,
) (*models.Appointment, bool) {

	ap := uc.repo.GetByID(ctx, id)
	if ap == nil {
		return nil, false
	}

	if in.ClientName != nil {
		ap.ClientName = *in.ClientName
	}
	if in.ClientPhone != nil {
		ap.ClientPhone = *in.ClientPhone
	}
	if in.ServiceID != nil {
		ap.ServiceID = *in.ServiceID
	}
	if in.PreferredDate != nil {
		ap.PreferredDate = *in.PreferredDate
	}
	if in.PreferredTime != nil {
		ap.PreferredTime = *in.PreferredTime
	}
	if in.Note != nil {
		ap.Note = *in.Note
	}
	if in.Origin != nil {
		ap.Origin = string(*in.Origin)
	}
	if in.Status != nil {
		ap.Status = string(*in.Status)
	}

	// created_at nunca muda; updated_at sempre avança em mutação real.
	ap.UpdatedAt = timezone.Now()

	if !uc.repo.Replace(ctx, ap) {
		return nil, false
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, true
}
