package schedule

import (
	"errors"
	"time"

	"github.com/styllus/barber-site/internal/models"
)

var (
	ErrClosed              = errors.New("selector is closed")
	ErrPastMonth           = errors.New("cannot navigate before the current month")
	ErrDayNotSelectable    = errors.New("day is not selectable")
	ErrNoDateSelected      = errors.New("no date selected")
	ErrSlotUnavailable     = errors.New("time slot is not available")
	ErrIncompleteSelection = errors.New("date and time must both be selected")
)

// PreferredDateTime é o par (data, hora) produzido pelo seletor. Vive só
// enquanto o formulário está sendo preenchido; na submissão vira o
// preferred_date/preferred_time do agendamento.
type PreferredDateTime struct {
	Date *time.Time `json:"date"`
	Time string     `json:"time"` // "HH:mm", vazio = ausente
}

func (p PreferredDateTime) Complete() bool {
	return p.Date != nil && p.Time != ""
}

// Selector implementa o fluxo de escolha em dois passos: primeiro o dia na
// grade do mês, depois o horário na lista fixa de slots. Só confirma com os
// dois escolhidos; cancelar descarta a seleção em andamento e volta ao
// último valor confirmado.
type Selector struct {
	slots []models.TimeSlot
	now   func() time.Time

	open      bool
	month     time.Time // dia 1 do mês exibido
	date      *time.Time
	timeOfDay string

	confirmed PreferredDateTime
}

// NewSelector recebe o catálogo fixo de slots — idêntico para qualquer data
// — e um relógio injetável.
func NewSelector(slots []models.TimeSlot, now func() time.Time) *Selector {
	if now == nil {
		now = time.Now
	}
	return &Selector{slots: slots, now: now}
}

func (s *Selector) IsOpen() bool { return s.open }

// Value é o último par confirmado (ausente se nunca confirmou).
func (s *Selector) Value() PreferredDateTime { return s.confirmed }

// Open apresenta o seletor. Com uma confirmação anterior, a seleção e o mês
// exibido partem dela; sem, abre no mês corrente sem nada escolhido.
func (s *Selector) Open() {
	s.open = true
	s.date = nil
	s.timeOfDay = ""

	ref := s.now()
	if s.confirmed.Date != nil {
		d := *s.confirmed.Date
		s.date = &d
		s.timeOfDay = s.confirmed.Time
		ref = d
	}
	s.month = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
}

// Cancel fecha descartando qualquer seleção em andamento.
func (s *Selector) Cancel() {
	s.open = false
	s.date = nil
	s.timeOfDay = ""
}

func (s *Selector) DisplayedMonth() (int, time.Month) {
	return s.month.Year(), s.month.Month()
}

func (s *Selector) NextMonth() {
	if !s.open {
		return
	}
	s.month = s.month.AddDate(0, 1, 0)
}

func (s *Selector) PreviousMonth() error {
	if !s.open {
		return ErrClosed
	}
	if !CanNavigateBack(s.month.Year(), s.month.Month(), s.now()) {
		return ErrPastMonth
	}
	s.month = s.month.AddDate(0, -1, 0)
	return nil
}

// SelectDate escolhe um dia elegível. Escolher a data não avança o fluxo
// sozinho — o horário continua pendente.
func (s *Selector) SelectDate(day time.Time) error {
	if !s.open {
		return ErrClosed
	}
	if !DaySelectable(day, s.now()) {
		return ErrDayNotSelectable
	}
	d := TruncateToDay(day)
	s.date = &d
	return nil
}

// SelectTime escolhe um slot do catálogo. Sem data escolhida a lista de
// horários nem é mostrada, então a seleção é rejeitada.
func (s *Selector) SelectTime(hm string) error {
	if !s.open {
		return ErrClosed
	}
	if s.date == nil {
		return ErrNoDateSelected
	}
	if !SlotAvailable(s.slots, hm) {
		return ErrSlotUnavailable
	}
	s.timeOfDay = hm
	return nil
}

// Confirm só emite o par com data E hora escolhidas; caso contrário rejeita
// e nada muda de estado.
func (s *Selector) Confirm() (PreferredDateTime, error) {
	if !s.open {
		return PreferredDateTime{}, ErrClosed
	}
	if s.date == nil || s.timeOfDay == "" {
		return PreferredDateTime{}, ErrIncompleteSelection
	}

	s.confirmed = PreferredDateTime{Date: s.date, Time: s.timeOfDay}
	s.open = false
	s.date = nil
	s.timeOfDay = ""

	return s.confirmed, nil
}

// SlotAvailable procura o horário no catálogo e respeita a flag de
// disponibilidade. Slots fora da lista não existem.
func SlotAvailable(slots []models.TimeSlot, hm string) bool {
	for _, slot := range slots {
		if slot.Time == hm {
			return slot.Available
		}
	}
	return false
}
