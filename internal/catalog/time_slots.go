package catalog

import "github.com/styllus/barber-site/internal/models"

// Slots de atendimento do dia, iguais para qualquer data. O horário de
// almoço (12:00/12:30) fica indisponível. Quando houver backend de agenda,
// esta lista passa a ser calculada por data.
var timeSlots = []models.TimeSlot{
	{Time: "09:00", Available: true},
	{Time: "09:30", Available: true},
	{Time: "10:00", Available: true},
	{Time: "10:30", Available: true},
	{Time: "11:00", Available: true},
	{Time: "11:30", Available: true},
	{Time: "12:00", Available: false},
	{Time: "12:30", Available: false},
	{Time: "13:00", Available: true},
	{Time: "13:30", Available: true},
	{Time: "14:00", Available: true},
	{Time: "14:30", Available: true},
	{Time: "15:00", Available: true},
	{Time: "15:30", Available: true},
	{Time: "16:00", Available: true},
	{Time: "16:30", Available: true},
	{Time: "17:00", Available: true},
	{Time: "17:30", Available: true},
	{Time: "18:00", Available: true},
	{Time: "18:30", Available: true},
	{Time: "19:00", Available: true},
	{Time: "19:30", Available: true},
}

func TimeSlots() []models.TimeSlot {
	out := make([]models.TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}
