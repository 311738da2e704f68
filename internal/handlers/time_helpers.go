package handlers

import (
	"time"

	"github.com/styllus/barber-site/internal/timezone"
)

const dateLayout = "2006-01-02"

func parseBookingDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		dateLayout,
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

// isValidTimeOfDay aceita apenas "HH:mm" de 24 horas. O valor em si é
// tratado como escalar opaco dali em diante.
func isValidTimeOfDay(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
