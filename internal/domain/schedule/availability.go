package schedule

import (
	"sort"

	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

// Slots começam sempre em múltiplos de 15 minutos, independente
// da duração da sessão.
const SlotStepMinutes = 15

// SlotsForDay resolve os horários de início disponíveis de um
// dia, em ordem crescente.
//
// Entrada: os períodos semanais do dia (weekday já filtrado pelo
// caller), as exceções da data exata, os agendamentos confirmados
// da data e a duração pedida. Um horário só é retornado se a
// sessão inteira couber num período de trabalho sem sobrepor
// nenhuma exceção nem nenhum agendamento.
func SlotsForDay(
	hours []models.WorkingHours,
	overrides []models.AvailabilityOverride,
	appointments []models.Appointment,
	durationMinutes int,
) []string {

	slots := []string{}

	if durationMinutes <= 0 {
		return slots
	}

	// exceção sem horário bloqueia o dia inteiro,
	// independente do horário semanal
	for _, o := range overrides {
		if o.StartTime == nil && o.EndTime == nil {
			return slots
		}
	}

	blocked := make([]Interval, 0, len(overrides)+len(appointments))

	for _, o := range overrides {
		if o.StartTime == nil || o.EndTime == nil {
			continue
		}
		start, err := ParseHM(*o.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseHM(*o.EndTime)
		if err != nil {
			continue
		}
		blocked = append(blocked, Interval{Start: start, End: end})
	}

	for _, ap := range appointments {
		if ap.Status == "cancelled" {
			// cancelados ficam no histórico mas não ocupam horário
			continue
		}
		start, err := ParseHM(ap.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseHM(ap.EndTime)
		if err != nil {
			continue
		}
		blocked = append(blocked, Interval{Start: start, End: end})
	}

	for _, wh := range hours {
		if !wh.Active {
			continue
		}
		periodStart, err := ParseHM(wh.StartTime)
		if err != nil {
			continue
		}
		periodEnd, err := ParseHM(wh.EndTime)
		if err != nil {
			continue
		}

		for cursor := periodStart; cursor+durationMinutes <= periodEnd; cursor += SlotStepMinutes {
			candidate := Interval{Start: cursor, End: cursor + durationMinutes}

			conflict := false
			for _, b := range blocked {
				if Overlaps(candidate, b) {
					conflict = true
					break
				}
			}

			if !conflict {
				slots = append(slots, FormatHM(cursor))
			}
		}
	}

	// períodos podem vir fora de ordem (turnos separados);
	// a ordenação global é obrigatória, não incidental
	sort.Strings(slots)

	return slots
}
