// Package textutil normaliza términos de búsqueda: el usuario escribe
// "Málaga" y debe encontrar filas guardadas como "Malaga" (y viceversa la
// búsqueda ILIKE del repositorio aporta la insensibilidad a mayúsculas).
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // quita las marcas diacríticas
	norm.NFC,
)

// Fold elimina acentos/diacríticos y recorta espacios del término. Si la
// transformación falla (entrada no-UTF8), devuelve el término original.
func Fold(term string) string {
	out, _, err := transform.String(foldTransformer, term)
	if err != nil {
		return strings.TrimSpace(term)
	}
	return strings.TrimSpace(out)
}
