package appointment

import (
	"context"
	"sort"
	"strings"

	domain "github.com/styllus/barber-site/internal/domain/appointment"
	"github.com/styllus/barber-site/internal/models"
)

type ListAppointmentsInput struct {
	// Status filtra pelo valor exato; vazio ou "all" devolve todos.
	Status string
	// Query busca por nome (case-insensitive) ou telefone (substring).
	Query string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute combina filtro de status e busca textual por interseção: a busca
// sempre varre a coleção completa e o resultado é restrito aos ids que
// também passaram no filtro de status. A ordenação final de exibição é por
// created_at decrescente, independente da ordem de inserção.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) []models.Appointment {

	status := in.Status
	if status == "" {
		status = domain.FilterAll
	}

	out := uc.repo.FilterByStatus(ctx, status)

	if strings.TrimSpace(in.Query) != "" {
		matched := uc.repo.Search(ctx, in.Query)

		ids := make(map[string]struct{}, len(matched))
		for _, ap := range matched {
			ids[ap.ID] = struct{}{}
		}

		kept := out[:0]
		for _, ap := range out {
			if _, ok := ids[ap.ID]; ok {
				kept = append(kept, ap)
			}
		}
		out = kept
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
