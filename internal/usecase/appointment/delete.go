package appointment

import (
	"context"

	"github.com/styllus/barber-site/internal/audit"
	domain "github.com/styllus/barber-site/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o agendamento de forma imediata e definitiva — não existe
// soft-delete. Id desconhecido é um no-op; a confirmação ("tem certeza?") é
// responsabilidade da camada de apresentação, nunca daqui.
func (uc *DeleteAppointment) Execute(ctx context.Context, id, actor string) bool {
	if !uc.repo.Remove(ctx, id) {
		return false
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	return true
}
