package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name     string
		cents    int64
		expected string
	}{
		{"Valor zero", 0, "R$ 0,00"},
		{"Centavos exatos", 12345, "R$ 123,45"},
		{"Menos de um real", 99, "R$ 0,99"},
		{"Separador de milhar", 123456, "R$ 1.234,56"},
		{"Milhões", 123456789, "R$ 1.234.567,89"},
		{"Valor negativo", -150, "-R$ 1,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBRL(tt.cents))
		})
	}
}

// TestFormatBRL_DivisaoDupla protege contra a regressão clássica de dividir
// por 100 duas vezes: um valor já convertido para reais e reconvertido produz
// uma saída diferente (e errada), então o teste fixa o contrato de que a
// entrada é sempre em centavos.
func TestFormatBRL_DivisaoDupla(t *testing.T) {
	cents := int64(12345)

	once := FormatBRL(cents)
	twice := FormatBRL(cents / 100)

	assert.Equal(t, "R$ 123,45", once)
	assert.Equal(t, "R$ 1,23", twice)
	assert.NotEqual(t, once, twice)
}
