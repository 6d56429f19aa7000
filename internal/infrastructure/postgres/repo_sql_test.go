package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier de captura: registra el SQL y los argumentos emitidos y corta la
// ejecución, para verificar la forma de las consultas sin una DB viva.
// ──────────────────────────────────────────────────────────────────────────────

var errCaptura = errors.New("consulta capturada")

type captureQuerier struct {
	sqls []string
	args [][]any
	tag  pgconn.CommandTag
}

func (c *captureQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sqls = append(c.sqls, sql)
	c.args = append(c.args, args)
	return c.tag, nil
}

func (c *captureQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sqls = append(c.sqls, sql)
	c.args = append(c.args, args)
	return nil, errCaptura
}

func (c *captureQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	c.sqls = append(c.sqls, sql)
	c.args = append(c.args, args)
	return captureRow{}
}

type captureRow struct{}

func (captureRow) Scan(dest ...any) error { return errCaptura }

func (c *captureQuerier) last() (string, []any) {
	i := len(c.sqls) - 1
	return c.sqls[i], c.args[i]
}

// ──────────────────────────────────────────────────────────────────────────────
// Search — insensibilidad a acentos en ambos lados
// ──────────────────────────────────────────────────────────────────────────────

// El patrón y la columna pasan ambos por unaccent(): un término plegado
// ("Bogota") debe encontrar la fila acentuada ("Bogotá") y viceversa.
func TestSearch_UnaccentEnColumnaYPatron(t *testing.T) {
	q := &captureQuerier{}
	repo := NewCompanyRepository(q)

	_, err := repo.Search(context.Background(), repository.SearchCompaniesParams{Term: "Bogota"})
	require.ErrorIs(t, err, errCaptura)

	sql, args := q.last()
	assert.Contains(t, sql, "unaccent(name) ILIKE unaccent($1)")
	assert.Contains(t, sql, "unaccent(commercial_number) ILIKE unaccent($2)")
	assert.Contains(t, sql, "unaccent(location) ILIKE unaccent($3)")
	assert.Equal(t, []any{"%Bogota%", "%Bogota%", "%Bogota%"}, args)
}

// Los metacaracteres de LIKE escritos por el usuario se buscan literales.
func TestSearch_EscapaMetacaracteres(t *testing.T) {
	q := &captureQuerier{}
	repo := NewCompanyRepository(q)

	_, err := repo.Search(context.Background(), repository.SearchCompaniesParams{Term: "100%"})
	require.ErrorIs(t, err, errCaptura)

	_, args := q.last()
	assert.Equal(t, `%100\%%`, args[0])
}

// Con término y filtros exactos, el grupo de texto va ORed entre paréntesis y
// ANDed con los filtros, con los placeholders numerados a continuación.
func TestSearch_FiltrosExactosTrasElGrupoDeTexto(t *testing.T) {
	q := &captureQuerier{}
	repo := NewCompanyRepository(q)
	activa := true

	_, err := repo.Search(context.Background(), repository.SearchCompaniesParams{
		Term:         "nile",
		IndustryType: "tech",
		IsActive:     &activa,
	})
	require.ErrorIs(t, err, errCaptura)

	sql, args := q.last()
	assert.Contains(t, sql, ") AND industry_type = $4 AND is_active = $5")
	assert.Equal(t, []any{"%nile%", "%nile%", "%nile%", "tech", true}, args)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — idempotencia
// ──────────────────────────────────────────────────────────────────────────────

// Borrar un id ya borrado devuelve false sin error.
func TestDelete_SegundaVezDevuelveFalseSinError(t *testing.T) {
	q := &captureQuerier{tag: pgconn.NewCommandTag("DELETE 1")}
	repo := NewCompanyRepository(q)

	deleted, err := repo.Delete(context.Background(), "c-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	q.tag = pgconn.NewCommandTag("DELETE 0")
	deleted, err = repo.Delete(context.Background(), "c-1")
	require.NoError(t, err)
	assert.False(t, deleted, "el segundo borrado no encuentra fila pero tampoco falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Count / FindAll — mismas condiciones, mismo WHERE
// ──────────────────────────────────────────────────────────────────────────────

// count(where) y findAll({where}) comparten la semántica de filtro: el WHERE
// materializado y los argumentos deben ser idénticos.
func TestCountYFindAll_MismoWhere(t *testing.T) {
	conds := []Cond{Eq("industry_type", "tech"), Eq("is_active", true)}
	q := &captureQuerier{}
	r := NewRepo[entity.Company](q, "companies", "id", companyColumns)

	_, _ = r.Count(context.Background(), conds)
	_, _ = r.FindAll(context.Background(), QueryOptions{Where: conds})

	require.Len(t, q.sqls, 2)
	const where = "WHERE industry_type = $1 AND is_active = $2"
	assert.Contains(t, q.sqls[0], where)
	assert.Contains(t, q.sqls[1], where)
	assert.Equal(t, q.args[0], q.args[1])
}

// ──────────────────────────────────────────────────────────────────────────────
// Fronteras inclusivas de los agregados
// ──────────────────────────────────────────────────────────────────────────────

// Una licencia que vence exactamente en "hoy + umbral" cuenta: la comparación
// es <= sobre CURRENT_DATE + N, y el umbral viaja como argumento.
func TestWithExpiringLicenses_FronteraInclusiva(t *testing.T) {
	q := &captureQuerier{}
	repo := NewCompanyRepository(q)

	_, err := repo.WithExpiringLicenses(context.Background(), 30)
	require.ErrorIs(t, err, errCaptura)

	sql, args := q.last()
	assert.Contains(t, sql, "l.expires_at <= (CURRENT_DATE + $1::int)")
	assert.Contains(t, sql, "WHERE l.is_active")
	assert.Equal(t, []any{30}, args)
}

// El rango [min, max] es inclusivo en ambos extremos (HAVING ... BETWEEN) y se
// aplica después de agregar, no antes.
func TestByEmployeeRange_LimitesInclusivos(t *testing.T) {
	q := &captureQuerier{}
	repo := NewCompanyRepository(q)

	_, err := repo.ByEmployeeRange(context.Background(), 5, 10)
	require.ErrorIs(t, err, errCaptura)

	sql, args := q.last()
	assert.Contains(t, sql, "HAVING COUNT(e.id) BETWEEN $1 AND $2")
	assert.Equal(t, []any{5, 10}, args)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exists — sin condiciones
// ──────────────────────────────────────────────────────────────────────────────

// Sin condiciones el SQL no lleva WHERE (un WHERE vacío sería inválido).
func TestExists_SinCondiciones_SQLValido(t *testing.T) {
	q := &captureQuerier{}
	r := NewRepo[entity.Company](q, "companies", "id", companyColumns)

	_, err := r.Exists(context.Background(), nil)
	require.ErrorIs(t, err, errCaptura)

	sql, _ := q.last()
	assert.Equal(t, "SELECT EXISTS (SELECT 1 FROM companies)", sql)
	assert.NotContains(t, sql, "WHERE")
}
