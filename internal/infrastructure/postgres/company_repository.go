package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/talento-hr/internal/domain"
	"github.com/jhoicas/talento-hr/internal/domain/entity"
	"github.com/jhoicas/talento-hr/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

var companyColumns = []string{
	"id", "name", "commercial_number", "industry_type", "location",
	"is_active", "total_employees", "total_licenses", "created_at", "updated_at",
}

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// Embebe el repositorio genérico para el CRUD y añade los joins, agrupaciones
// y estadísticas derivadas propias de Company.
type CompanyRepo struct {
	*Repo[entity.Company]
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
// Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{Repo: NewRepo[entity.Company](q, "companies", "id", companyColumns)}
}

// Create persiste una nueva empresa. Número mercantil duplicado devuelve
// domain.ErrDuplicate.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	created, err := r.Repo.Create(ctx, []Assign{
		Set("id", c.ID),
		Set("name", c.Name),
		Set("commercial_number", c.CommercialNumber),
		Set("industry_type", c.IndustryType),
		Set("location", c.Location),
		Set("is_active", c.IsActive),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}
	return created, nil
}

// GetByID obtiene una empresa por ID. (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.FindByID(ctx, id)
}

// GetByCommercialNumber obtiene una empresa por número de registro mercantil.
func (r *CompanyRepo) GetByCommercialNumber(ctx context.Context, number string) (*entity.Company, error) {
	return r.FindByField(ctx, "commercial_number", number)
}

// Update actualización parcial; sella updated_at. (nil, nil) si el id no existe.
func (r *CompanyRepo) Update(ctx context.Context, id string, in repository.UpdateCompany) (*entity.Company, error) {
	var fields []Assign
	if in.Name != nil {
		fields = append(fields, Set("name", *in.Name))
	}
	if in.CommercialNumber != nil {
		fields = append(fields, Set("commercial_number", *in.CommercialNumber))
	}
	if in.IndustryType != nil {
		fields = append(fields, Set("industry_type", *in.IndustryType))
	}
	if in.Location != nil {
		fields = append(fields, Set("location", *in.Location))
	}
	if in.IsActive != nil {
		fields = append(fields, Set("is_active", *in.IsActive))
	}
	updated, err := r.Repo.Update(ctx, id, fields)
	if err != nil && isUniqueViolation(err) {
		return nil, domain.ErrDuplicate
	}
	return updated, err
}

// List devuelve empresas con paginación, más recientes primero.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	return r.FindAll(ctx, QueryOptions{OrderBy: "created_at", Desc: true, Limit: limit, Offset: offset})
}

// Count total de empresas registradas.
func (r *CompanyRepo) Count(ctx context.Context) (int64, error) {
	return r.Repo.Count(ctx, nil)
}

// FindByIndustryType empresas de un sector, ordenadas por nombre ascendente
// (única clave natural de orden disponible; desempate determinista).
func (r *CompanyRepo) FindByIndustryType(ctx context.Context, industryType string) ([]*entity.Company, error) {
	return r.FindAll(ctx, QueryOptions{Where: []Cond{Eq("industry_type", industryType)}, OrderBy: "name"})
}

// FindByLocation empresas de una ubicación, ordenadas por nombre ascendente.
func (r *CompanyRepo) FindByLocation(ctx context.Context, location string) ([]*entity.Company, error) {
	return r.FindAll(ctx, QueryOptions{Where: []Cond{Eq("location", location)}, OrderBy: "name"})
}

// Search combina texto libre (nombre, número mercantil o ubicación, ORed) con
// filtros exactos opcionales (ANDed). Los filtros se acumulan como lista de
// predicados y se combinan recién al ejecutar: agregar una dimensión nueva no
// toca la lógica de combinación.
func (r *CompanyRepo) Search(ctx context.Context, p repository.SearchCompaniesParams) ([]*entity.Company, error) {
	var conds []Cond
	if p.IndustryType != "" {
		conds = append(conds, Eq("industry_type", p.IndustryType))
	}
	if p.Location != "" {
		conds = append(conds, Eq("location", p.Location))
	}
	if p.IsActive != nil {
		conds = append(conds, Eq("is_active", *p.IsActive))
	}
	opts := QueryOptions{Where: conds, OrderBy: "name", Limit: p.Limit, Offset: p.Offset}
	if p.Term == "" {
		return r.FindAll(ctx, opts)
	}
	return r.Repo.Search(ctx, p.Term, []string{"name", "commercial_number", "location"}, opts)
}

// GetByIDWithRelations obtiene la empresa y, en paralelo, sus conteos de
// empleados, licencias y usuarios. Si la empresa no existe devuelve (nil, nil)
// sin lanzar los conteos. Los tres conteos se lanzan juntos y se esperan
// juntos; no hay snapshot consistente entre ellos bajo escrituras concurrentes.
func (r *CompanyRepo) GetByIDWithRelations(ctx context.Context, id string) (*repository.CompanyWithRelations, error) {
	company, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}

	out := &repository.CompanyWithRelations{Company: *company}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { out.EmployeeCount = r.GetEmployeeCount(gctx, id); return nil })
	g.Go(func() error { out.LicenseCount = r.GetLicenseCount(gctx, id); return nil })
	g.Go(func() error { out.UserCount = r.GetUserCount(gctx, id); return nil })
	_ = g.Wait() // los helpers nunca fallan: degradan a cero
	return out, nil
}

// GetStats agregados de una empresa: conteos, nómina total y salario promedio.
// El promedio es 0 cuando no hay empleados (guardia explícita contra división
// por cero). Estadísticas de mejor esfuerzo: cada sub-consulta degrada a cero
// por separado.
func (r *CompanyRepo) GetStats(ctx context.Context, companyID string) (*repository.CompanyStats, error) {
	stats := &repository.CompanyStats{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { stats.EmployeeCount = r.GetEmployeeCount(gctx, companyID); return nil })
	g.Go(func() error { stats.LicenseCount = r.GetLicenseCount(gctx, companyID); return nil })
	g.Go(func() error { stats.UserCount = r.GetUserCount(gctx, companyID); return nil })
	g.Go(func() error { stats.TotalSalary = r.GetTotalSalary(gctx, companyID); return nil })
	_ = g.Wait()

	if stats.EmployeeCount > 0 {
		stats.AverageSalary = stats.TotalSalary.Div(decimal.NewFromInt(stats.EmployeeCount))
	} else {
		stats.AverageSalary = decimal.Zero
	}
	return stats, nil
}

// WithExpiringLicenses empresas con al menos una licencia activa que vence
// dentro de daysThreshold días (frontera inclusiva: "hoy + N" cuenta). Las
// empresas sin licencias por vencer quedan fuera por el propio JOIN.
func (r *CompanyRepo) WithExpiringLicenses(ctx context.Context, daysThreshold int) ([]repository.CompanyExpiringLicenses, error) {
	const query = `
		SELECT c.id, c.name, c.commercial_number, c.industry_type, c.location,
		       c.is_active, c.total_employees, c.total_licenses, c.created_at, c.updated_at,
		       COUNT(l.id) AS expiring_licenses
		FROM companies c
		JOIN licenses l ON l.company_id = c.id
		WHERE l.is_active
		  AND l.expires_at IS NOT NULL
		  AND l.expires_at <= (CURRENT_DATE + $1::int)
		GROUP BY c.id
		ORDER BY expiring_licenses DESC, c.name ASC`
	rows, err := r.q.Query(ctx, query, daysThreshold)
	if err != nil {
		return nil, storageErr("expiring licenses", err)
	}
	defer rows.Close()

	var results []repository.CompanyExpiringLicenses
	for rows.Next() {
		var row repository.CompanyExpiringLicenses
		c := &row.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.CommercialNumber, &c.IndustryType, &c.Location,
			&c.IsActive, &c.TotalEmployees, &c.TotalLicenses, &c.CreatedAt, &c.UpdatedAt,
			&row.ExpiringLicenses,
		); err != nil {
			return nil, storageErr("scan expiring licenses", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("expiring licenses rows", err)
	}
	return results, nil
}

// ByEmployeeRange empresas cuyo conteo real de empleados cae en
// [minEmployees, maxEmployees] inclusive, ordenadas por conteo descendente.
// El predicado se aplica DESPUÉS de agregar (HAVING), no antes.
func (r *CompanyRepo) ByEmployeeRange(ctx context.Context, minEmployees, maxEmployees int) ([]repository.CompanyEmployeeCount, error) {
	const query = `
		SELECT c.id, c.name, c.commercial_number, c.industry_type, c.location,
		       c.is_active, c.total_employees, c.total_licenses, c.created_at, c.updated_at,
		       COUNT(e.id) AS employee_count
		FROM companies c
		JOIN employees e ON e.company_id = c.id
		GROUP BY c.id
		HAVING COUNT(e.id) BETWEEN $1 AND $2
		ORDER BY employee_count DESC, c.name ASC`
	rows, err := r.q.Query(ctx, query, minEmployees, maxEmployees)
	if err != nil {
		return nil, storageErr("companies by employee range", err)
	}
	defer rows.Close()

	var results []repository.CompanyEmployeeCount
	for rows.Next() {
		var row repository.CompanyEmployeeCount
		c := &row.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.CommercialNumber, &c.IndustryType, &c.Location,
			&c.IsActive, &c.TotalEmployees, &c.TotalLicenses, &c.CreatedAt, &c.UpdatedAt,
			&row.EmployeeCount,
		); err != nil {
			return nil, storageErr("scan employee range", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("employee range rows", err)
	}
	return results, nil
}

// RefreshStats recalcula los contadores desnormalizados de empleados y
// licencias y los persiste sobre la fila de la empresa, sellando updated_at.
// Es el único camino de escritura que sincroniza los contadores: los casos de
// uso lo invocan tras cada alta o baja de empleado/licencia.
func (r *CompanyRepo) RefreshStats(ctx context.Context, companyID string) error {
	const query = `
		UPDATE companies SET
			total_employees = (SELECT COUNT(*) FROM employees WHERE company_id = $1),
			total_licenses  = (SELECT COUNT(*) FROM licenses  WHERE company_id = $1),
			updated_at      = now()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, companyID)
	if err != nil {
		return storageErr("refresh company stats", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Sub-consultas de conteo ──────────────────────────────────────────────────
// Nunca fallan: cualquier error se registra y degrada a cero, para que el
// fallo de una estadística no impida las demás (política deliberada de fallo
// parcial; las estadísticas son de mejor esfuerzo, no consistentes).

// GetEmployeeCount número de empleados de la empresa (0 si la consulta falla).
func (r *CompanyRepo) GetEmployeeCount(ctx context.Context, companyID string) int64 {
	return r.countScoped(ctx, "employees", companyID)
}

// GetLicenseCount número de licencias de la empresa (0 si la consulta falla).
func (r *CompanyRepo) GetLicenseCount(ctx context.Context, companyID string) int64 {
	return r.countScoped(ctx, "licenses", companyID)
}

// GetUserCount número de usuarios miembros de la empresa (0 si falla).
func (r *CompanyRepo) GetUserCount(ctx context.Context, companyID string) int64 {
	return r.countScoped(ctx, "company_users", companyID)
}

// GetTotalSalary nómina total de la empresa (0 si la consulta falla).
func (r *CompanyRepo) GetTotalSalary(ctx context.Context, companyID string) decimal.Decimal {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(salary), 0) FROM employees WHERE company_id = $1`,
		companyID,
	).Scan(&total)
	if err != nil {
		log.Warn().Err(err).Str("company_id", companyID).Msg("suma de salarios degradada a cero")
		return decimal.Zero
	}
	return total
}

func (r *CompanyRepo) countScoped(ctx context.Context, table, companyID string) int64 {
	var n int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE company_id = $1", table)
	if err := r.q.QueryRow(ctx, query, companyID).Scan(&n); err != nil {
		log.Warn().Err(err).Str("table", table).Str("company_id", companyID).Msg("conteo degradado a cero")
		return 0
	}
	return n
}
