package interval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercial-api/internal/domain/interval"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(interval.DateLayout, s)
	require.NoError(t, err)
	return d
}

// TestOverlaps_CombinacionesDeLimites recorre las combinaciones relevantes de
// límites abiertos/cerrados en ambos intervalos.
func TestOverlaps_CombinacionesDeLimites(t *testing.T) {
	cases := []struct {
		name                   string
		aStart, aEnd           interval.Bound
		bStart, bEnd           interval.Bound
		want                   bool
	}{
		{
			name:   "cerrados que comparten días",
			aStart: interval.At(date(t, "2024-01-01")), aEnd: interval.At(date(t, "2024-06-30")),
			bStart: interval.At(date(t, "2024-06-15")), bEnd: interval.At(date(t, "2024-12-31")),
			want: true,
		},
		{
			name:   "cerrados disjuntos",
			aStart: interval.At(date(t, "2024-01-01")), aEnd: interval.At(date(t, "2024-03-31")),
			bStart: interval.At(date(t, "2024-04-01")), bEnd: interval.At(date(t, "2024-12-31")),
			want: false,
		},
		{
			name:   "cerrados que se tocan en un solo día (inclusivo)",
			aStart: interval.At(date(t, "2024-01-01")), aEnd: interval.At(date(t, "2024-06-30")),
			bStart: interval.At(date(t, "2024-06-30")), bEnd: interval.At(date(t, "2024-12-31")),
			want: true,
		},
		{
			name:   "inicio abierto contra inicio posterior: no se tocan",
			aStart: interval.Unbounded(), aEnd: interval.At(date(t, "2024-06-30")),
			bStart: interval.At(date(t, "2024-07-01")), bEnd: interval.Unbounded(),
			want: false,
		},
		{
			name:   "cerrado contra totalmente abierto",
			aStart: interval.At(date(t, "2024-01-01")), aEnd: interval.At(date(t, "2024-12-31")),
			bStart: interval.Unbounded(), bEnd: interval.Unbounded(),
			want: true,
		},
		{
			name:   "ambos totalmente abiertos",
			aStart: interval.Unbounded(), aEnd: interval.Unbounded(),
			bStart: interval.Unbounded(), bEnd: interval.Unbounded(),
			want: true,
		},
		{
			name:   "fin abierto alcanza un intervalo futuro",
			aStart: interval.At(date(t, "2024-01-01")), aEnd: interval.Unbounded(),
			bStart: interval.At(date(t, "2030-01-01")), bEnd: interval.At(date(t, "2030-12-31")),
			want: true,
		},
		{
			name:   "fin cerrado anterior a inicio cerrado con resto abierto",
			aStart: interval.Unbounded(), aEnd: interval.At(date(t, "2023-12-31")),
			bStart: interval.At(date(t, "2024-01-01")), bEnd: interval.At(date(t, "2024-12-31")),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := interval.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			assert.Equal(t, tc.want, got)
			// El solapamiento es simétrico.
			assert.Equal(t, tc.want, interval.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd),
				"Overlaps debe ser simétrico")
		})
	}
}

// TestContains_InclusivoEnAmbosExtremos verifica que la fecha objetivo que
// coincide exactamente con el inicio o el fin queda dentro del intervalo.
func TestContains_InclusivoEnAmbosExtremos(t *testing.T) {
	start := interval.At(date(t, "2024-01-01"))
	end := interval.At(date(t, "2024-06-30"))

	assert.True(t, interval.Contains(start, end, date(t, "2024-01-01")), "el inicio exacto está incluido")
	assert.True(t, interval.Contains(start, end, date(t, "2024-06-30")), "el fin exacto está incluido")
	assert.True(t, interval.Contains(start, end, date(t, "2024-03-15")))
	assert.False(t, interval.Contains(start, end, date(t, "2023-12-31")))
	assert.False(t, interval.Contains(start, end, date(t, "2024-07-01")))
}

func TestContains_LimitesAbiertos(t *testing.T) {
	target := date(t, "2024-03-15")

	assert.True(t, interval.Contains(interval.Unbounded(), interval.Unbounded(), target))
	assert.True(t, interval.Contains(interval.Unbounded(), interval.At(date(t, "2024-03-15")), target))
	assert.True(t, interval.Contains(interval.At(date(t, "2024-03-15")), interval.Unbounded(), target))
	assert.False(t, interval.Contains(interval.At(date(t, "2024-03-16")), interval.Unbounded(), target))
	assert.False(t, interval.Contains(interval.Unbounded(), interval.At(date(t, "2024-03-14")), target))
}

func TestValidRange(t *testing.T) {
	assert.True(t, interval.ValidRange(interval.At(date(t, "2024-01-01")), interval.At(date(t, "2024-01-01"))),
		"inicio igual a fin es válido")
	assert.False(t, interval.ValidRange(interval.At(date(t, "2024-02-01")), interval.At(date(t, "2024-01-01"))))
	assert.True(t, interval.ValidRange(interval.Unbounded(), interval.At(date(t, "2024-01-01"))))
	assert.True(t, interval.ValidRange(interval.At(date(t, "2024-01-01")), interval.Unbounded()))
	assert.True(t, interval.ValidRange(interval.Unbounded(), interval.Unbounded()))
}

func TestBound_PtrYFromPtr(t *testing.T) {
	d := date(t, "2024-05-01")

	b := interval.FromPtr(&d)
	require.False(t, b.IsUnbounded())
	got, ok := b.Date()
	require.True(t, ok)
	assert.True(t, got.Equal(d))
	require.NotNil(t, b.Ptr())
	assert.True(t, b.Ptr().Equal(d))

	open := interval.FromPtr(nil)
	assert.True(t, open.IsUnbounded())
	assert.Nil(t, open.Ptr())
}

func TestBound_Equal(t *testing.T) {
	d := date(t, "2024-05-01")
	assert.True(t, interval.At(d).Equal(interval.At(d)))
	assert.True(t, interval.Unbounded().Equal(interval.Unbounded()))
	assert.False(t, interval.At(d).Equal(interval.Unbounded()))
	assert.False(t, interval.At(d).Equal(interval.At(date(t, "2024-05-02"))))
}
