package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHM(t *testing.T) {
	min, err := ParseHM("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, min)

	min, err = ParseHM("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	min, err = ParseHM("23:45")
	require.NoError(t, err)
	assert.Equal(t, 23*60+45, min)

	_, err = ParseHM("25:00")
	assert.Error(t, err)

	_, err = ParseHM("9h30")
	assert.Error(t, err)

	_, err = ParseHM("")
	assert.Error(t, err)
}

func TestFormatHM(t *testing.T) {
	assert.Equal(t, "09:30", FormatHM(9*60+30))
	assert.Equal(t, "00:00", FormatHM(0))
	assert.Equal(t, "23:45", FormatHM(23*60+45))
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjuntos", Interval{540, 600}, Interval{660, 720}, false},
		{"sobreposição parcial", Interval{540, 630}, Interval{600, 660}, true},
		{"contido", Interval{540, 720}, Interval{600, 660}, true},
		{"idênticos", Interval{540, 600}, Interval{540, 600}, true},
		// meio-aberto: terminar às 14:00 não conflita com começar às 14:00
		{"extremos encostados", Interval{780, 840}, Interval{840, 900}, false},
		{"extremos encostados invertido", Interval{840, 900}, Interval{780, 840}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			// predicado é simétrico
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a))
		})
	}
}
