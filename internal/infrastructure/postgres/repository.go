package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/talento-hr/internal/domain"
)

// Assign asignación (columna, valor) para INSERT y UPDATE. Igual que Cond,
// evita reflexión sobre structs: el repositorio concreto decide las columnas.
type Assign struct {
	Field string
	Value any
}

// Set azúcar para construir asignaciones.
func Set(field string, value any) Assign {
	return Assign{Field: field, Value: value}
}

// Repo implementación genérica de las operaciones de acceso a datos comunes,
// parametrizada por la forma de la fila T. Cada repositorio concreto embebe un
// Repo con su tabla y columnas; las filas se escanean por nombre vía los tags
// `db` de T (pgx.RowToAddrOfStructByName).
//
// Repo es una fachada sin estado sobre el Querier: no posee las entidades ni
// abre transacciones propias, y cada método muta o lee exactamente una vez.
// Todo fallo del motor se normaliza a *domain.StorageError; la ausencia de
// fila se señala con (nil, nil), nunca con error.
type Repo[T any] struct {
	q        Querier
	table    string
	idColumn string
	columns  []string
}

// NewRepo construye el repositorio genérico para una tabla. Pasar pool o tx.
func NewRepo[T any](q Querier, table, idColumn string, columns []string) *Repo[T] {
	return &Repo[T]{q: q, table: table, idColumn: idColumn, columns: columns}
}

func (r *Repo[T]) selectList() string {
	return strings.Join(r.columns, ", ")
}

// FindAll lista filas según QueryOptions. Sin opciones devuelve la tabla
// completa en el orden que decida el almacenamiento.
func (r *Repo[T]) FindAll(ctx context.Context, opts QueryOptions) ([]*T, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", r.selectList(), r.table)
	where, args := combine(opts.Where, " AND ", 1)
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	appendClauses(&sb, opts)
	return r.queryAll(ctx, sb.String(), args)
}

// FindByID busca por clave primaria. Devuelve (nil, nil) si no existe.
func (r *Repo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindByField(ctx, r.idColumn, id)
}

// FindByField busca la primera fila cuyo campo sea igual al valor. Si varias
// filas coinciden, cuál se devuelve depende del almacenamiento (sin orden
// secundario no hay determinismo; limitación documentada del contrato).
func (r *Repo[T]) FindByField(ctx context.Context, field string, value any) (*T, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 1", r.selectList(), r.table, field)
	rows, err := r.q.Query(ctx, sql, value)
	if err != nil {
		return nil, storageErr("select "+r.table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("scan "+r.table, err)
	}
	return row, nil
}

// FindByIDs búsqueda por lote. El orden del resultado no sigue al de ids y los
// ids sin fila simplemente no aparecen (ni error ni hueco).
func (r *Repo[T]) FindByIDs(ctx context.Context, ids []string) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ANY($1)", r.selectList(), r.table, r.idColumn)
	return r.queryAll(ctx, sql, []any{ids})
}

// Create inserta una fila con las asignaciones dadas y devuelve la fila
// completa (RETURNING). La validación de campos requeridos es responsabilidad
// del llamador (domain.ValidateRequired).
func (r *Repo[T]) Create(ctx context.Context, fields []Assign) (*T, error) {
	names := make([]string, 0, len(fields))
	placeholders := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for i, f := range fields {
		names = append(names, f.Field)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, f.Value)
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.table, strings.Join(names, ", "), strings.Join(placeholders, ", "), r.selectList())
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr("insert "+r.table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, storageErr("insert "+r.table, err)
	}
	return row, nil
}

// Update actualización parcial: aplica las asignaciones sobre la fila y sella
// updated_at. Devuelve (nil, nil) si el id no existe; nunca hace upsert.
func (r *Repo[T]) Update(ctx context.Context, id string, fields []Assign) (*T, error) {
	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		sets = append(sets, fmt.Sprintf("%s = $%d", f.Field, i+1))
		args = append(args, f.Value)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		r.table, strings.Join(sets, ", "), r.idColumn, len(args), r.selectList())
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr("update "+r.table, err)
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("update "+r.table, err)
	}
	return row, nil
}

// Delete elimina por id. Devuelve true solo si se borró una fila; borrar un id
// inexistente no es error (idempotente).
func (r *Repo[T]) Delete(ctx context.Context, id string) (bool, error) {
	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.table, r.idColumn)
	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return false, storageErr("delete "+r.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Count cuenta filas con la misma semántica de filtro que FindAll.
func (r *Repo[T]) Count(ctx context.Context, where []Cond) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT COUNT(*) FROM %s", r.table)
	clause, args := combine(where, " AND ", 1)
	if clause != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(clause)
	}
	var n int64
	if err := r.q.QueryRow(ctx, sb.String(), args...).Scan(&n); err != nil {
		return 0, storageErr("count "+r.table, err)
	}
	return n, nil
}

// Exists informa si al menos una fila cumple todas las condiciones (ANDed).
// Sin condiciones pregunta si la tabla tiene alguna fila.
func (r *Repo[T]) Exists(ctx context.Context, where []Cond) (bool, error) {
	clause, args := combine(where, " AND ", 1)
	sql := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s)", r.table)
	if clause != "" {
		sql = fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s)", r.table, clause)
	}
	var exists bool
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, storageErr("exists "+r.table, err)
	}
	return exists, nil
}

// Search busca el término como subcadena (ILIKE) en cada uno de fields, ORed:
// una fila coincide si CUALQUIER campo contiene el término. La comparación es
// insensible a acentos en AMBOS lados: columna y patrón pasan por unaccent()
// (extensión habilitada en la migración), así "Bogota" encuentra "Bogotá" y
// viceversa. opts.Where se combina con AND sobre el grupo de texto.
func (r *Repo[T]) Search(ctx context.Context, term string, fields []string, opts QueryOptions) ([]*T, error) {
	pattern := "%" + escapeLike(term) + "%"
	parts := make([]string, 0, len(fields))
	textArgs := make([]any, 0, len(fields))
	for i, f := range fields {
		parts = append(parts, fmt.Sprintf("unaccent(%s) ILIKE unaccent($%d)", f, i+1))
		textArgs = append(textArgs, pattern)
	}
	textClause := strings.Join(parts, " OR ")
	whereClause, whereArgs := combine(opts.Where, " AND ", len(textArgs)+1)

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s WHERE (%s)", r.selectList(), r.table, textClause)
	if whereClause != "" {
		sb.WriteString(" AND ")
		sb.WriteString(whereClause)
	}
	appendClauses(&sb, opts)
	return r.queryAll(ctx, sb.String(), append(textArgs, whereArgs...))
}

func (r *Repo[T]) queryAll(ctx context.Context, sql string, args []any) ([]*T, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr("select "+r.table, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, storageErr("scan "+r.table, err)
	}
	if list == nil {
		list = []*T{}
	}
	return list, nil
}

// storageErr envuelve cualquier fallo del motor en el error normalizado del
// dominio. Los llamadores nunca ven tipos de pgx.
func storageErr(op string, err error) error {
	return &domain.StorageError{Op: op, Err: err}
}
