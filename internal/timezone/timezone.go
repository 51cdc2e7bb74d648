package timezone

import "time"

// O estúdio opera num único fuso fixo. Toda data/hora do
// sistema é interpretada nele.
const StudioTimezone = "America/Argentina/Jujuy"

func Location() *time.Location {
	loc, err := time.LoadLocation(StudioTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// StartOfDay normaliza um instante para a meia-noite do dia
// no fuso do estúdio.
func StartOfDay(t time.Time) time.Time {
	t = t.In(Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location())
}
