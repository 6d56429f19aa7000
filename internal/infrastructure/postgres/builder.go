package postgres

import (
	"fmt"
	"strings"
)

// Op operador de comparación de un predicado.
type Op string

const (
	OpEq    Op = "="
	OpNeq   Op = "<>"
	OpLt    Op = "<"
	OpLte   Op = "<="
	OpGt    Op = ">"
	OpGte   Op = ">="
	OpILike Op = "ILIKE"
)

// Cond es un predicado estructurado (campo, operador, valor). Los filtros se
// acumulan como lista de Cond y se combinan recién al ejecutar, así agregar
// una dimensión de filtro nueva es puramente aditivo. Los nombres de campo son
// constantes del código, nunca entrada del usuario.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Eq predicado de igualdad, el caso más común.
func Eq(field string, value any) Cond {
	return Cond{Field: field, Op: OpEq, Value: value}
}

// QueryOptions opciones de listado: filtros exactos (ANDed), orden único,
// límite y desplazamiento. El valor cero significa "sin filtro, orden del
// almacenamiento, sin tope" — el orden solo es estable si OrderBy está puesto.
type QueryOptions struct {
	Where   []Cond
	OrderBy string
	Desc    bool
	Limit   int
	Offset  int
}

// combine materializa una lista de predicados en SQL con placeholders
// numerados desde start y devuelve los argumentos en el mismo orden.
// sep es el combinador explícito (" AND " u " OR ").
func combine(conds []Cond, sep string, start int) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))
	for i, c := range conds {
		parts = append(parts, fmt.Sprintf("%s %s $%d", c.Field, c.Op, start+i))
		args = append(args, c.Value)
	}
	return strings.Join(parts, sep), args
}

// appendClauses agrega ORDER BY / LIMIT / OFFSET según las opciones.
func appendClauses(sb *strings.Builder, opts QueryOptions) {
	if opts.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(opts.OrderBy)
		if opts.Desc {
			sb.WriteString(" DESC")
		}
	}
	if opts.Limit > 0 {
		fmt.Fprintf(sb, " LIMIT %d", opts.Limit)
	}
	if opts.Offset > 0 {
		fmt.Fprintf(sb, " OFFSET %d", opts.Offset)
	}
}

// escapeLike escapa los metacaracteres de LIKE/ILIKE en un término de búsqueda
// para que "%" y "_" escritos por el usuario se busquen literales.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
