package repository

import (
	"context"
	"strings"
	"sync"

	domain "github.com/styllus/barber-site/internal/domain/appointment"
	"github.com/styllus/barber-site/internal/models"
)

// AppointmentMemoryRepository guarda a coleção inteira em memória. Não há
// backend: todo o estado se perde quando o processo termina, e é exatamente
// esse o contrato. O mutex existe porque o gin atende requisições em
// goroutines concorrentes.
type AppointmentMemoryRepository struct {
	mu  sync.RWMutex
	aps []models.Appointment
}

var _ domain.Repository = (*AppointmentMemoryRepository)(nil)

// NewAppointmentMemoryRepository cria a coleção já populada com o seed
// recebido. O seed é injetado aqui para manter dados de demonstração fora da
// lógica do repositório.
func NewAppointmentMemoryRepository(seed []models.Appointment) *AppointmentMemoryRepository {
	aps := make([]models.Appointment, len(seed))
	copy(aps, seed)
	return &AppointmentMemoryRepository{aps: aps}
}

// ======================================================
// ESCRITA
// ======================================================

func (r *AppointmentMemoryRepository) Insert(_ context.Context, ap *models.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.aps = append([]models.Appointment{*ap}, r.aps...)
}

func (r *AppointmentMemoryRepository) Replace(_ context.Context, ap *models.Appointment) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.aps {
		if r.aps[i].ID == ap.ID {
			r.aps[i] = *ap
			return true
		}
	}
	return false
}

func (r *AppointmentMemoryRepository) Remove(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.aps {
		if r.aps[i].ID == id {
			r.aps = append(r.aps[:i], r.aps[i+1:]...)
			return true
		}
	}
	return false
}

// ======================================================
// LEITURA
// ======================================================

func (r *AppointmentMemoryRepository) GetByID(_ context.Context, id string) *models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.aps {
		if r.aps[i].ID == id {
			ap := r.aps[i]
			return &ap
		}
	}
	return nil
}

func (r *AppointmentMemoryRepository) List(_ context.Context) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot()
}

func (r *AppointmentMemoryRepository) FilterByStatus(_ context.Context, status string) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if status == domain.FilterAll {
		return r.snapshot()
	}

	out := []models.Appointment{}
	for _, ap := range r.aps {
		if ap.Status == status {
			out = append(out, ap)
		}
	}
	return out
}

func (r *AppointmentMemoryRepository) Search(_ context.Context, term string) []models.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if strings.TrimSpace(term) == "" {
		return r.snapshot()
	}

	// Nome: case-insensitive. Telefone: substring literal, sem normalizar
	// caixa — a assimetria é proposital e faz parte do contrato.
	lower := strings.ToLower(term)

	out := []models.Appointment{}
	for _, ap := range r.aps {
		if strings.Contains(strings.ToLower(ap.ClientName), lower) ||
			strings.Contains(ap.ClientPhone, term) {
			out = append(out, ap)
		}
	}
	return out
}

// snapshot copia a coleção para que chamadores não alterem o estado interno.
// Chamar com o lock já adquirido.
func (r *AppointmentMemoryRepository) snapshot() []models.Appointment {
	out := make([]models.Appointment, len(r.aps))
	copy(out, r.aps)
	return out
}
