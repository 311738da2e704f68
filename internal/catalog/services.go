package catalog

import "github.com/styllus/barber-site/internal/models"

// Catálogo fixo de serviços da Styllu's. Sem backend, é definido aqui e
// nunca muda em tempo de execução; o store de agendamentos guarda só o id e
// não valida a referência.
var services = []models.Service{
	{
		ID:          "1",
		Name:        "Corte Masculino",
		Description: "Corte personalizado de acordo com seu estilo e tipo de cabelo. Inclui lavagem e finalização.",
		Price:       45,
		DurationMin: 40,
	},
	{
		ID:          "2",
		Name:        "Barba Completa",
		Description: "Aparação e modelagem de barba com navalha, toalha quente e produtos hidratantes.",
		Price:       35,
		DurationMin: 30,
	},
	{
		ID:          "3",
		Name:        "Sobrancelha",
		Description: "Design e limpeza de sobrancelha para um olhar mais expressivo e alinhado.",
		Price:       20,
		DurationMin: 15,
	},
	{
		ID:          "4",
		Name:        "Combo Corte + Barba",
		Description: "O pacote completo: corte masculino + barba completa com desconto especial.",
		Price:       70,
		DurationMin: 70,
	},
	{
		ID:          "5",
		Name:        "Hidratação Capilar",
		Description: "Tratamento intensivo para cabelos ressecados, devolvendo brilho e maciez.",
		Price:       50,
		DurationMin: 45,
	},
	{
		ID:          "6",
		Name:        "Pigmentação de Barba",
		Description: "Coloração natural para cobrir falhas e fios brancos da barba.",
		Price:       60,
		DurationMin: 50,
	},
}

func Services() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

func ServiceByID(id string) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}
