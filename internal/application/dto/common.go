package dto

// Paginación compartida por los listados de empresas, empleados y licencias.

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest página solicitada en el query string. Limit 0 significa "usar
// el defecto"; el tope evita que un listado arrastre la tabla completa.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage normaliza la página: aplica el defecto, recorta al tope y
// descarta offsets negativos.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = defaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse eco de la página servida. Total solo viaja cuando el caso de
// uso contó el universo completo (hoy, el listado general de empresas).
type PageResponse struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total,omitempty"`
}

// MakePage metadatos de página sin total.
func MakePage(limit, offset int) PageResponse {
	return PageResponse{Limit: limit, Offset: offset}
}

// MakePageWithTotal metadatos de página con el total del universo filtrado.
func MakePageWithTotal(limit, offset int, total int64) PageResponse {
	return PageResponse{Limit: limit, Offset: offset, Total: total}
}

// ErrorResponse cuerpo uniforme de error de la API: código estable para el
// cliente más un mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
