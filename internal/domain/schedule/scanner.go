package schedule

import (
	"time"

	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

const dateLayout = "2006-01-02"

// AvailableDates varre o calendário de from até to (inclusive) e
// devolve as datas ISO com pelo menos um horário livre para a
// duração pedida.
//
// As coleções globais são indexadas uma vez antes do loop para
// não re-varrer a lista inteira de agendamentos a cada dia.
func AvailableDates(
	from time.Time,
	to time.Time,
	hours []models.WorkingHours,
	overrides []models.AvailabilityOverride,
	appointments []models.Appointment,
	durationMinutes int,
) []string {

	hoursByWeekday := make(map[int][]models.WorkingHours)
	for _, wh := range hours {
		if !wh.Active {
			continue
		}
		hoursByWeekday[wh.Weekday] = append(hoursByWeekday[wh.Weekday], wh)
	}

	overridesByDate := make(map[string][]models.AvailabilityOverride)
	for _, o := range overrides {
		key := o.Date.Format(dateLayout)
		overridesByDate[key] = append(overridesByDate[key], o)
	}

	appointmentsByDate := make(map[string][]models.Appointment)
	for _, ap := range appointments {
		key := ap.Date.Format(dateLayout)
		appointmentsByDate[key] = append(appointmentsByDate[key], ap)
	}

	dates := []string{}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dayHours := hoursByWeekday[int(day.Weekday())]
		if len(dayHours) == 0 {
			continue
		}

		key := day.Format(dateLayout)
		slots := SlotsForDay(
			dayHours,
			overridesByDate[key],
			appointmentsByDate[key],
			durationMinutes,
		)

		if len(slots) > 0 {
			dates = append(dates, key)
		}
	}

	return dates
}
