// Package taxid utilidades para identificadores tributarios.
package taxid

import (
	"fmt"
	"strings"
	"unicode"
)

// pesos del dígito de verificación NIT (módulo 11, DIAN), alineados a la derecha.
var nitWeights = [15]int{71, 67, 59, 53, 47, 43, 41, 37, 29, 23, 19, 17, 13, 7, 3}

// NITBase devuelve los dígitos del NIT sin el dígito de verificación.
// Acepta "900.123.456-8", "900123456-8" o "900123456".
func NITBase(taxID string) string {
	base, _, _ := strings.Cut(taxID, "-")
	return digits(base)
}

// NITCheckDigit calcula el dígito de verificación de base (solo dígitos, máx. 15).
func NITCheckDigit(base string) (byte, error) {
	if base == "" || len(base) > len(nitWeights) || digits(base) != base {
		return 0, fmt.Errorf("taxid: NIT base inválido %q", base)
	}
	offset := len(nitWeights) - len(base)
	var sum int
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * nitWeights[offset+i]
	}
	r := sum % 11
	if r > 1 {
		r = 11 - r
	}
	return byte('0' + r), nil
}

// ValidateNIT comprueba un NIT con dígito de verificación ("base-DV").
func ValidateNIT(taxID string) error {
	base, dv, ok := strings.Cut(taxID, "-")
	if !ok || len(digits(dv)) != 1 {
		return fmt.Errorf("taxid: %q no incluye dígito de verificación", taxID)
	}
	want, err := NITCheckDigit(digits(base))
	if err != nil {
		return err
	}
	if got := digits(dv)[0]; got != want {
		return fmt.Errorf("taxid: dígito de verificación inválido: esperado %c, recibido %c", want, got)
	}
	return nil
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
