package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailableDates_OnlyWorkingWeekdays(t *testing.T) {
	// 2025-06-02 é segunda; expediente só de segunda
	hours := []models.WorkingHours{period(1, "09:00", "12:00")}

	dates := AvailableDates(
		day(2025, time.June, 2),
		day(2025, time.June, 15),
		hours, nil, nil, 60,
	)

	assert.Equal(t, []string{"2025-06-02", "2025-06-09"}, dates)
}

func TestAvailableDates_WholeDayOverrideRemovesDate(t *testing.T) {
	hours := []models.WorkingHours{period(1, "09:00", "12:00")}
	overrides := []models.AvailabilityOverride{
		{Date: day(2025, time.June, 2), Kind: models.OverrideVacation},
	}

	dates := AvailableDates(
		day(2025, time.June, 2),
		day(2025, time.June, 15),
		hours, overrides, nil, 60,
	)

	assert.Equal(t, []string{"2025-06-09"}, dates)
}

func TestAvailableDates_FullyBookedDayRemoved(t *testing.T) {
	hours := []models.WorkingHours{period(1, "09:00", "11:00")}
	appointments := []models.Appointment{
		{
			Date:      day(2025, time.June, 2),
			StartTime: "09:00",
			EndTime:   "11:00",
			Status:    "confirmed",
		},
	}

	dates := AvailableDates(
		day(2025, time.June, 2),
		day(2025, time.June, 8),
		hours, nil, appointments, 60,
	)

	assert.Empty(t, dates)
}

func TestAvailableDates_InclusiveBounds(t *testing.T) {
	// expediente todos os dias; janela de um único dia
	var hours []models.WorkingHours
	for wd := 0; wd <= 6; wd++ {
		hours = append(hours, period(wd, "09:00", "12:00"))
	}

	single := day(2025, time.June, 4)
	dates := AvailableDates(single, single, hours, nil, nil, 60)

	assert.Equal(t, []string{"2025-06-04"}, dates)
}

func TestAvailableDates_NoWorkingHoursAtAll(t *testing.T) {
	dates := AvailableDates(
		day(2025, time.June, 2),
		day(2025, time.August, 2),
		nil, nil, nil, 60,
	)

	assert.Empty(t, dates)
	assert.NotNil(t, dates)
}
