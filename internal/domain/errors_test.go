package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired(map[string]string{"name": "Acme"}))

	err := ValidateRequired(map[string]string{
		"name":              "",
		"commercial_number": "",
		"location":          "Bogotá",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	// Ordenado para mensajes deterministas.
	assert.Equal(t, []string{"commercial_number", "name"}, vErr.Fields)
}

func TestStorageError_Unwrap(t *testing.T) {
	causa := errors.New("conexión rechazada")
	err := &StorageError{Op: "company.find_all", Err: causa}

	assert.ErrorIs(t, err, causa)
	assert.Contains(t, err.Error(), "company.find_all")
}
