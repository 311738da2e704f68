package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/styllus/barber-site/internal/domain/appointment"
	infraRepo "github.com/styllus/barber-site/internal/infra/repository"
	"github.com/styllus/barber-site/internal/models"
)

func listFixture() *infraRepo.AppointmentMemoryRepository {
	base := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	return infraRepo.NewAppointmentMemoryRepository([]models.Appointment{
		{
			ID:          "apt_a",
			ClientName:  "João",
			ClientPhone: "(11) 91111-0001",
			Status:      string(domain.StatusConfirmed),
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			ID:          "apt_b",
			ClientName:  "João",
			ClientPhone: "(11) 92222-0002",
			Status:      string(domain.StatusUnconfirmed),
			CreatedAt:   base.Add(time.Hour),
			UpdatedAt:   base.Add(time.Hour),
		},
		{
			ID:          "apt_c",
			ClientName:  "Maria",
			ClientPhone: "(11) 93333-0003",
			Status:      string(domain.StatusConfirmed),
			CreatedAt:   base.Add(2 * time.Hour),
			UpdatedAt:   base.Add(2 * time.Hour),
		},
	})
}

func TestList_DefaultsToEverything(t *testing.T) {
	uc := NewListAppointments(listFixture())

	out := uc.Execute(context.Background(), ListAppointmentsInput{})
	assert.Len(t, out, 3)
}

func TestList_IntersectsStatusAndSearch(t *testing.T) {
	uc := NewListAppointments(listFixture())

	// A (CONFIRMED, João) e B (UNCONFIRMED, João): filtro + busca é
	// interseção, então só A sobra
	out := uc.Execute(context.Background(), ListAppointmentsInput{
		Status: string(domain.StatusConfirmed),
		Query:  "João",
	})

	require.Len(t, out, 1)
	assert.Equal(t, "apt_a", out[0].ID)
}

func TestList_SearchAloneScansWholeCollection(t *testing.T) {
	uc := NewListAppointments(listFixture())

	out := uc.Execute(context.Background(), ListAppointmentsInput{Query: "joão"})
	assert.Len(t, out, 2)
}

func TestList_BlankQueryOnlyFilters(t *testing.T) {
	uc := NewListAppointments(listFixture())

	out := uc.Execute(context.Background(), ListAppointmentsInput{
		Status: string(domain.StatusConfirmed),
		Query:  "   ",
	})
	assert.Len(t, out, 2)
}

func TestList_SortsByCreatedAtDescending(t *testing.T) {
	uc := NewListAppointments(listFixture())

	out := uc.Execute(context.Background(), ListAppointmentsInput{})
	require.Len(t, out, 3)
	assert.Equal(t, "apt_c", out[0].ID)
	assert.Equal(t, "apt_b", out[1].ID)
	assert.Equal(t, "apt_a", out[2].ID)
}

func TestList_NoMatches(t *testing.T) {
	uc := NewListAppointments(listFixture())

	out := uc.Execute(context.Background(), ListAppointmentsInput{
		Status: string(domain.StatusCancelled),
	})
	assert.Empty(t, out)
}
