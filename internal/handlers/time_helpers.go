package handlers

import (
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/domain/schedule"
	"github.com/luciddatattoo/studio-scheduler/internal/timezone"
)

// parseDate interpreta YYYY-MM-DD no fuso fixo do estúdio.
func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
}

// validPeriod confere um par HH:MM com início antes do fim.
func validPeriod(start, end string) bool {
	s, err := schedule.ParseHM(start)
	if err != nil {
		return false
	}
	e, err := schedule.ParseHM(end)
	if err != nil {
		return false
	}
	return s < e
}
