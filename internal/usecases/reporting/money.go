package reporting

import (
	"fmt"
	"strings"
)

// FormatBRL formata um valor em centavos como moeda brasileira (R$ 1.234,56).
// Esta é a única fronteira onde centavos viram reais: aplicar a conversão em
// qualquer outro ponto reintroduz o bug clássico da divisão dupla.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := cents / 100
	centavos := cents % 100

	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(reais), centavos)
}

func groupThousands(v int64) string {
	digits := fmt.Sprintf("%d", v)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
