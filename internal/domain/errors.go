package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError indica campos requeridos ausentes en un payload de creación
// o actualización. Se construye con ValidateRequired.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "campos requeridos faltantes: " + strings.Join(e.Fields, ", ")
}

// Is permite errors.Is(err, domain.ErrInvalidInput) sobre un ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ValidateRequired devuelve un *ValidationError con los nombres de los campos
// cuyo valor está vacío, o nil si todos están presentes.
func ValidateRequired(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &ValidationError{Fields: missing}
}

// StorageError normaliza cualquier fallo del motor de almacenamiento en un
// único tipo con mensaje legible. El error original queda accesible vía
// errors.Unwrap pero los llamadores nunca dependen de tipos de pgx.
type StorageError struct {
	Op  string // operación que falló, ej. "select companies"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
