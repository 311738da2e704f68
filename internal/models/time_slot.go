package models

// TimeSlot é um horário agendável do dia. A lista é fixa e igual para todas
// as datas — não há verificação de disponibilidade em tempo real.
type TimeSlot struct {
	Time      string `json:"time"` // "HH:mm"
	Available bool   `json:"available"`
}
