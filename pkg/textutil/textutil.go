// Package textutil normaliza texto libre para búsquedas: minúsculas y sin
// diacríticos, de modo que "Pérez" y "perez" comparen igual.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize devuelve s en minúsculas, sin espacios sobrantes y sin marcas
// diacríticas (NFD → quitar Mn → NFC).
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
