package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styllus/barber-site/internal/audit"
	domain "github.com/styllus/barber-site/internal/domain/appointment"
	infraRepo "github.com/styllus/barber-site/internal/infra/repository"
)

func newTestStack() (*infraRepo.AppointmentMemoryRepository, *audit.Dispatcher) {
	repo := infraRepo.NewAppointmentMemoryRepository(nil)
	dispatcher := audit.NewDispatcher(audit.New(100))
	return repo, dispatcher
}

func validCreateInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName:    "Ana Silva",
		ClientPhone:   "(11) 99999-0000",
		ServiceID:     "1",
		PreferredDate: time.Date(2027, time.March, 8, 0, 0, 0, 0, time.UTC),
		PreferredTime: "10:00",
		Origin:        domain.OriginSite,
		Actor:         "site",
	}
}

func TestCreate_ForcesInitialStatus(t *testing.T) {
	repo, dispatcher := newTestStack()
	uc := NewCreateAppointment(repo, dispatcher)

	ap := uc.Execute(context.Background(), validCreateInput())

	assert.Equal(t, string(domain.StatusUnconfirmed), ap.Status)
}

func TestCreate_StampsIdentityAndTimes(t *testing.T) {
	repo, dispatcher := newTestStack()
	uc := NewCreateAppointment(repo, dispatcher)

	ap := uc.Execute(context.Background(), validCreateInput())

	assert.NotEmpty(t, ap.ID)
	assert.Contains(t, ap.ID, "apt_")
	assert.False(t, ap.CreatedAt.IsZero())
	assert.True(t, ap.UpdatedAt.Equal(ap.CreatedAt))
}

func TestCreate_IDsAreUnique(t *testing.T) {
	repo, dispatcher := newTestStack()
	uc := NewCreateAppointment(repo, dispatcher)

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		ap := uc.Execute(context.Background(), validCreateInput())
		_, dup := seen[ap.ID]
		require.False(t, dup, "id repetido: %s", ap.ID)
		seen[ap.ID] = struct{}{}
	}

	assert.Len(t, repo.List(context.Background()), 100)
}

func TestCreate_InsertsAtFront(t *testing.T) {
	repo, dispatcher := newTestStack()
	uc := NewCreateAppointment(repo, dispatcher)

	first := uc.Execute(context.Background(), validCreateInput())
	second := uc.Execute(context.Background(), validCreateInput())

	aps := repo.List(context.Background())
	require.Len(t, aps, 2)
	assert.Equal(t, second.ID, aps[0].ID)
	assert.Equal(t, first.ID, aps[1].ID)
}

func TestCreate_AllowsDoubleBooking(t *testing.T) {
	repo, dispatcher := newTestStack()
	uc := NewCreateAppointment(repo, dispatcher)

	// mesmo dia, mesmo horário: permitido — não há detecção de conflito
	uc.Execute(context.Background(), validCreateInput())
	uc.Execute(context.Background(), validCreateInput())

	assert.Len(t, repo.List(context.Background()), 2)
}

func TestCreate_RecordsOrigin(t *testing.T) {
	repo, dispatcher := newTestStack()
	uc := NewCreateAppointment(repo, dispatcher)

	in := validCreateInput()
	in.Origin = domain.OriginAdmin
	ap := uc.Execute(context.Background(), in)

	assert.Equal(t, string(domain.OriginAdmin), ap.Origin)
}
