package schedule

import (
	"fmt"
	"time"
)

// ===============================
// Primitivas de intervalo
// ===============================

// Intervalo de minutos desde a meia-noite, sempre meio-aberto:
// [Start, End).
type Interval struct {
	Start int
	End   int
}

// ParseHM converte "HH:MM" (24h) em minutos desde a meia-noite.
func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHM formata minutos desde a meia-noite como "HH:MM".
func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps é o único predicado de sobreposição do sistema —
// todos os checks de conflito passam por aqui. Intervalos
// meio-abertos: extremos que apenas se tocam não conflitam
// (uma sessão que termina às 14:00 não conflita com outra que
// começa às 14:00).
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}
