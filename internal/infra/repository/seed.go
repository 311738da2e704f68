package repository

import (
	"time"

	domain "github.com/styllus/barber-site/internal/domain/appointment"
	"github.com/styllus/barber-site/internal/models"
	"github.com/styllus/barber-site/internal/timezone"
)

// DefaultSeed devolve os agendamentos de demonstração com que a coleção é
// populada na subida do processo. Simulam pedidos feitos pela página
// "Agende Seu Horário" e registros criados direto no painel; fora o id fixo,
// são agendamentos comuns, sujeitos ao mesmo ciclo de vida dos demais.
func DefaultSeed() []models.Appointment {
	loc := timezone.Location(timezone.DefaultTimezone)

	date := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	}
	at := func(year int, month time.Month, day, hour, min int) time.Time {
		return time.Date(year, month, day, hour, min, 0, 0, loc)
	}

	return []models.Appointment{
		{
			ID:            "apt_demo_001",
			ClientName:    "João Silva",
			ClientPhone:   "(11) 99999-1234",
			ServiceID:     "1", // Corte Masculino
			PreferredDate: date(2025, time.December, 10),
			PreferredTime: "10:00",
			Note:          "Prefiro o barbeiro Carlos, se possível.",
			Origin:        string(domain.OriginSite),
			Status:        string(domain.StatusUnconfirmed),
			CreatedAt:     at(2025, time.December, 5, 14, 30),
			UpdatedAt:     at(2025, time.December, 5, 14, 30),
		},
		{
			ID:            "apt_demo_002",
			ClientName:    "Pedro Santos",
			ClientPhone:   "(11) 98888-5678",
			ServiceID:     "4", // Combo Corte + Barba
			PreferredDate: date(2025, time.December, 11),
			PreferredTime: "14:30",
			Origin:        string(domain.OriginSite),
			Status:        string(domain.StatusConfirmed),
			CreatedAt:     at(2025, time.December, 4, 9, 15),
			UpdatedAt:     at(2025, time.December, 4, 10, 0),
		},
		{
			ID:            "apt_demo_003",
			ClientName:    "Carlos Oliveira",
			ClientPhone:   "(11) 97777-9012",
			ServiceID:     "2", // Barba Completa
			PreferredDate: date(2025, time.December, 8),
			PreferredTime: "16:00",
			Note:          "Primeira vez na barbearia.",
			Origin:        string(domain.OriginSite),
			Status:        string(domain.StatusUnconfirmed),
			CreatedAt:     at(2025, time.December, 3, 18, 45),
			UpdatedAt:     at(2025, time.December, 3, 18, 45),
		},
		{
			ID:            "apt_demo_004",
			ClientName:    "André Costa",
			ClientPhone:   "(11) 96666-3456",
			ServiceID:     "5", // Hidratação Capilar
			PreferredDate: date(2025, time.December, 12),
			PreferredTime: "11:00",
			Origin:        string(domain.OriginAdmin),
			Status:        string(domain.StatusConfirmed),
			CreatedAt:     at(2025, time.December, 2, 11, 30),
			UpdatedAt:     at(2025, time.December, 2, 11, 35),
		},
		{
			ID:            "apt_demo_005",
			ClientName:    "Lucas Ferreira",
			ClientPhone:   "(11) 95555-7890",
			ServiceID:     "1", // Corte Masculino
			PreferredDate: date(2025, time.December, 6),
			PreferredTime: "09:30",
			Origin:        string(domain.OriginSite),
			Status:        string(domain.StatusCompleted),
			CreatedAt:     at(2025, time.December, 1, 20, 0),
			UpdatedAt:     at(2025, time.December, 6, 10, 15),
		},
		{
			ID:            "apt_demo_006",
			ClientName:    "Marcos Almeida",
			ClientPhone:   "(11) 94444-1122",
			ServiceID:     "6", // Pigmentação de Barba
			PreferredDate: date(2025, time.December, 9),
			PreferredTime: "15:00",
			Note:          "Quero cobrir alguns fios brancos.",
			Origin:        string(domain.OriginSite),
			Status:        string(domain.StatusCancelled),
			CreatedAt:     at(2025, time.December, 2, 8, 20),
			UpdatedAt:     at(2025, time.December, 5, 9, 0),
		},
		{
			ID:            "apt_demo_007",
			ClientName:    "Ricardo Mendes",
			ClientPhone:   "(11) 93333-4455",
			ServiceID:     "3", // Sobrancelha
			PreferredDate: date(2025, time.December, 13),
			PreferredTime: "17:30",
			Origin:        string(domain.OriginAdmin),
			Status:        string(domain.StatusUnconfirmed),
			CreatedAt:     at(2025, time.December, 5, 16, 0),
			UpdatedAt:     at(2025, time.December, 5, 16, 0),
		},
	}
}
