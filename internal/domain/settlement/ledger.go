// Package settlement deriva saldo y estado de una factura a medida que se aplican pagos.
package settlement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// MoneyScale decimales que conservan las columnas de importes NUMERIC(18,4).
const MoneyScale = 4

// ValidateScale rechaza un importe con más decimales significativos de los que se persisten:
// redondeado en la base dejaría saldo y estado desincronizados.
func ValidateScale(field string, d decimal.Decimal) error {
	if !d.Equal(d.Truncate(MoneyScale)) {
		return fmt.Errorf("%w: %s admite como máximo %d decimales", domain.ErrInvalidInput, field, MoneyScale)
	}
	return nil
}

// Seed inicializa una factura nueva: nada pagado, saldo = total y estado DRAFT
// sin importar lo que traiga el llamador.
func Seed(inv *entity.Invoice) {
	inv.PaidAmount = decimal.Zero
	inv.Balance = inv.TotalAmount
	inv.Status = entity.InvoiceStatusDraft
}

// Balance total - pagado.
func Balance(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// DeriveStatus calcula el estado tras un cambio de lo pagado:
//   - nuevo saldo <= 0            -> PAID
//   - el saldo bajó en este paso  -> PARTIALLY_PAID
//   - en otro caso se conserva el estado actual.
func DeriveStatus(oldBalance, newBalance decimal.Decimal, current string) string {
	if newBalance.LessThanOrEqual(decimal.Zero) {
		return entity.InvoiceStatusPaid
	}
	if oldBalance.GreaterThan(newBalance) {
		return entity.InvoiceStatusPartiallyPaid
	}
	return current
}

// SetPaid fija el monto pagado y rederiva saldo y estado.
func SetPaid(inv *entity.Invoice, paid decimal.Decimal) {
	oldBalance := inv.Balance
	newBalance := Balance(inv.TotalAmount, paid)
	inv.PaidAmount = paid
	inv.Balance = newBalance
	inv.Status = DeriveStatus(oldBalance, newBalance, inv.Status)
}

// ValidatePayment comprueba que amount > 0, que cabe en la escala de la columna
// y que no se pague más que el total.
func ValidatePayment(inv *entity.Invoice, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: el monto del pago debe ser positivo", domain.ErrInvalidInput)
	}
	if err := ValidateScale("el monto del pago", amount); err != nil {
		return err
	}
	if inv.PaidAmount.Add(amount).GreaterThan(inv.TotalAmount) {
		return fmt.Errorf("%w: el monto del pago excede el total de la factura", domain.ErrInvalidInput)
	}
	return nil
}

// ApplyPayment valida y aplica un pago sobre la factura en memoria.
// Si devuelve error la factura no se modifica.
func ApplyPayment(inv *entity.Invoice, amount decimal.Decimal) error {
	if err := ValidatePayment(inv, amount); err != nil {
		return err
	}
	SetPaid(inv, inv.PaidAmount.Add(amount))
	return nil
}

// RecalculateTotal aplica un nuevo total a una factura existente: el saldo se recalcula
// con lo ya pagado y el estado no se toca.
func RecalculateTotal(inv *entity.Invoice, total decimal.Decimal) {
	inv.TotalAmount = total
	inv.Balance = Balance(total, inv.PaidAmount)
}
