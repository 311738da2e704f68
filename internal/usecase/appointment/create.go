package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/styllus/barber-site/internal/audit"
	domain "github.com/styllus/barber-site/internal/domain/appointment"
	"github.com/styllus/barber-site/internal/models"
	"github.com/styllus/barber-site/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string
	ServiceID   string

	PreferredDate time.Time
	PreferredTime string // "HH:mm"

	Note   string
	Origin domain.Origin

	// Actor identifica quem disparou a operação, só para auditoria.
	Actor string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute cria o agendamento e nunca falha: id, status inicial e carimbos de
// tempo são de propriedade do store, não do chamador. Não há verificação de
// conflito de horário nem de telefone duplicado — agendar duas pessoas no
// mesmo slot é permitido.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) *models.Appointment {

	now := timezone.Now()

	ap := &models.Appointment{
		ID:            fmt.Sprintf("apt_%s", uuid.NewString()),
		ClientName:    in.ClientName,
		ClientPhone:   in.ClientPhone,
		ServiceID:     in.ServiceID,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Note:          in.Note,
		Origin:        string(in.Origin),
		Status:        string(domain.InitialStatus()),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	uc.repo.Insert(ctx, ap)

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap
}
