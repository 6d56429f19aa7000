package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in, esperado string
	}{
		{"Nílé", "Nile"},
		{"Bogotá", "Bogota"},
		{"Medellín", "Medellin"},
		{"ACME", "ACME"},
		{"über", "uber"},
		{"", ""},
		{"sin acentos", "sin acentos"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.esperado, Fold(tc.in), "entrada: %q", tc.in)
	}
}
