package schedule

import "time"

// CalendarCell é uma célula da grade mensal. Day == 0 marca as células
// vazias de preenchimento antes do dia 1; a view monta as linhas de 7.
type CalendarCell struct {
	Day  int        `json:"day"`
	Date *time.Time `json:"date,omitempty"`
}

// MonthGrid gera a grade do mês exibido: tantas células vazias quanto o
// índice do dia da semana do dia 1 (domingo = 0), seguidas de uma célula por
// dia do mês. Não há preenchimento ao final — a última linha fica
// incompleta mesmo.
func MonthGrid(year int, month time.Month, loc *time.Location) []CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := LastDayOfMonth(year, month, loc)

	cells := make([]CalendarCell, 0, int(first.Weekday())+last.Day())

	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, CalendarCell{})
	}

	for day := 1; day <= last.Day(); day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, loc)
		cells = append(cells, CalendarCell{Day: day, Date: &d})
	}

	return cells
}

// LastDayOfMonth usa o truque do "dia 0 do mês seguinte".
func LastDayOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
}

// TruncateToDay zera o componente de hora.
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaySelectable decide se um dia pode ser escolhido: não pode estar
// estritamente antes de hoje (comparação à meia-noite) e não pode cair num
// domingo — a barbearia não abre.
func DaySelectable(day, now time.Time) bool {
	if TruncateToDay(day).Before(TruncateToDay(now)) {
		return false
	}
	return day.Weekday() != time.Sunday
}

// CanNavigateBack trava a navegação para trás quando o mês exibido já é o
// mês corrente; para frente não há limite.
func CanNavigateBack(year int, month time.Month, now time.Time) bool {
	displayed := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return displayed.After(current)
}
