// Package interval modela los límites de vigencia de una tarifa como valores
// etiquetados: un límite es una fecha concreta (At) o es abierto (Unbounded).
// Un inicio abierto significa "desde siempre" (−∞) y un fin abierto "sin
// vencimiento" (+∞). Los predicados Overlaps y Contains son funciones totales
// sobre las cuatro combinaciones de límites abiertos/cerrados.
package interval

import "time"

// DateLayout formato de fecha usado en la API para los límites de vigencia.
const DateLayout = "2006-01-02"

// Bound límite de un intervalo de vigencia: una fecha o abierto.
type Bound struct {
	date    time.Time
	bounded bool
}

// At construye un límite en la fecha dada.
func At(d time.Time) Bound {
	return Bound{date: d, bounded: true}
}

// Unbounded construye un límite abierto.
func Unbounded() Bound {
	return Bound{}
}

// FromPtr convierte una fecha opcional (columna NULL) en un Bound.
func FromPtr(d *time.Time) Bound {
	if d == nil {
		return Unbounded()
	}
	return At(*d)
}

// Ptr devuelve la fecha como puntero, nil si el límite es abierto.
// Útil para persistir en columnas DATE NULL y para DTOs.
func (b Bound) Ptr() *time.Time {
	if !b.bounded {
		return nil
	}
	d := b.date
	return &d
}

// IsUnbounded indica si el límite es abierto.
func (b Bound) IsUnbounded() bool {
	return !b.bounded
}

// Date devuelve la fecha del límite y si está acotado.
func (b Bound) Date() (time.Time, bool) {
	return b.date, b.bounded
}

// Equal compara dos límites.
func (b Bound) Equal(o Bound) bool {
	if b.bounded != o.bounded {
		return false
	}
	return !b.bounded || b.date.Equal(o.date)
}

// startBeforeEq evalúa inicio ≤ fin tratando un inicio abierto como −∞ y un
// fin abierto como +∞. Con cualquiera de los dos abierto la comparación es
// verdadera por definición.
func startBeforeEq(start, end Bound) bool {
	if !start.bounded || !end.bounded {
		return true
	}
	return !start.date.After(end.date)
}

// ValidRange indica si el rango [start, end] está bien formado (inicio ≤ fin
// cuando ambos límites existen). Un rango con algún límite abierto siempre es
// válido.
func ValidRange(start, end Bound) bool {
	return startBeforeEq(start, end)
}

// Overlaps indica si [aStart, aEnd] y [bStart, bEnd] se intersectan.
// Dos intervalos cerrados se solapan sii s1 ≤ e2 y s2 ≤ e1; los límites
// abiertos heredan la semántica −∞/+∞, por lo que el predicado es correcto
// para las cuatro combinaciones en cada lado. Inclusivo en ambos extremos.
func Overlaps(aStart, aEnd, bStart, bEnd Bound) bool {
	return startBeforeEq(aStart, bEnd) && startBeforeEq(bStart, aEnd)
}

// Contains indica si la fecha target cae dentro de [start, end], inclusivo en
// ambos extremos y con la misma semántica de límites abiertos que Overlaps.
func Contains(start, end Bound, target time.Time) bool {
	t := At(target)
	return startBeforeEq(start, t) && startBeforeEq(t, end)
}
