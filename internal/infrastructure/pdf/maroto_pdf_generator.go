// Package pdf genera el estado de cuenta de una factura en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIT       │  N° Factura + Tipo + Fechas  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TERCERO: Nombre + NIT/CC + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Base / Impuestos / Total / Pagado / SALDO         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA PAGOS: N° | Fecha | Método | Estado | Monto          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con número, total y saldo                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, st billing.InvoiceStatement) ([]byte, error) {
	if st.Invoice == nil {
		return nil, fmt.Errorf("pdf: factura vacía")
	}
	m := newStatement(st)

	author := "Contable"
	if st.Company != nil {
		author = st.Company.Name
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+st.Invoice.InvoiceNumber, true).
		WithAuthor(author, true).
		Build()

	doc := maroto.New(cfg)
	doc.AddRows(m.headerRow())
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	doc.AddRows(m.partnerRow())
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	doc.AddRows(m.totalsRow())
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	doc.AddRows(paymentsHeaderRow())
	for _, r := range m.paymentRows() {
		doc.AddRows(r)
	}

	doc.AddRows(line.NewRow(3))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	doc.AddRows(m.footerRow())

	out, err := doc.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// statement agrupa los datos con los valores por defecto ya resueltos.
type statement struct {
	billing.InvoiceStatement
	places int32
	symbol string
}

func newStatement(st billing.InvoiceStatement) statement {
	s := statement{InvoiceStatement: st, places: 2, symbol: "$"}
	if st.Currency != nil {
		s.places = int32(st.Currency.DecimalPlaces)
		s.symbol = nonEmpty(st.Currency.Symbol, st.Currency.Code)
	}
	return s
}

func (s statement) money(d decimal.Decimal) string {
	return s.symbol + formatMoney(d, s.places)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + NIT (izq) y N° factura + fechas (der).
func (s statement) headerRow() core.Row {
	inv := s.Invoice
	name, taxID := "-", "-"
	if s.Company != nil {
		name = s.Company.Name
		taxID = nonEmpty(s.Company.TaxID, "-")
	}

	return row.New(22).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+taxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA · "+invoiceTypeLabel(inv.InvoiceType), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(inv.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+inv.InvoiceDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New("Vence: "+inv.DueDate.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// partnerRow: datos del cliente o proveedor.
func (s statement) partnerRow() core.Row {
	p := s.Partner
	if p == nil {
		p = &entity.BusinessPartner{PartnerName: s.Invoice.BusinessPartnerID}
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("TERCERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.PartnerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIT/CC: %s   |   Email: %s   |   Tel: %s",
				nonEmpty(p.TaxID, "-"),
				nonEmpty(p.Email, "-"),
				nonEmpty(p.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// totalsRow: bloque de totales alineado a la derecha; el saldo va resaltado.
func (s statement) totalsRow() core.Row {
	inv := s.Invoice
	label := func(str string, top float64) core.Component {
		return text.New(str, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(str string, top float64) core.Component {
		return text.New(str, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(str string, top float64, a align.Type, right float64) core.Component {
		return text.New(str, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a,
			Color: colorPrimary, Right: right, Top: top,
		})
	}

	return row.New(34).Add(
		col.New(3).Add(
			text.New("Estado: "+inv.Status, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		),
		col.New(3),
		col.New(3).Add(
			label("Base:", 1),
			label("Impuestos:", 6),
			label("Total:", 11),
			label("Pagado:", 16),
			grand("SALDO:", 23, align.Right, 2),
		),
		col.New(3).Add(
			value(s.money(inv.TotalBeforeTax), 1),
			value(s.money(inv.TotalTax), 6),
			value(s.money(inv.TotalAmount), 11),
			value(s.money(inv.PaidAmount), 16),
			grand(s.money(inv.Balance), 23, align.Right, 1),
		),
	)
}

// paymentsHeaderRow: cabecera de la tabla de pagos.
func paymentsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("N° pago", 3, align.Left),
		h("Fecha", 2, align.Center),
		h("Método", 3, align.Left),
		h("Estado", 2, align.Center),
		h("Monto", 2, align.Right),
	)
}

// paymentRows: una fila por pago vinculado a la factura.
func (s statement) paymentRows() []core.Row {
	if len(s.Payments) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin pagos registrados", props.Text{Size: 8, Top: 1, Color: colorGray, Align: align.Center}),
		))}
	}
	result := make([]core.Row, 0, len(s.Payments))
	for _, p := range s.Payments {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(p.PaymentNumber, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.PaymentDate.Format(dateLayout), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(3).Add(text.New(p.PaymentMethod, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Status, props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(s.money(p.Amount), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return result
}

// footerRow: QR con número, total y saldo para conciliación rápida.
func (s statement) footerRow() core.Row {
	inv := s.Invoice
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(qrPayload(inv), props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Documento informativo del saldo de la factura "+inv.InvoiceNumber+".", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Los pagos en estado PENDING no afectan el saldo hasta ser aplicados.", props.Text{
				Size: 7, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func qrPayload(inv *entity.Invoice) string {
	return strings.Join([]string{
		"NumFac=" + inv.InvoiceNumber,
		"FecFac=" + inv.InvoiceDate.Format("2006-01-02"),
		"ValTot=" + inv.TotalAmount.StringFixed(2),
		"Saldo=" + inv.Balance.StringFixed(2),
	}, "\n")
}

func invoiceTypeLabel(t string) string {
	switch t {
	case entity.InvoiceTypeSales:
		return "VENTA"
	case entity.InvoiceTypePurchase:
		return "COMPRA"
	case entity.InvoiceTypeCreditNote:
		return "NOTA CRÉDITO"
	case entity.InvoiceTypeDebitNote:
		return "NOTA DÉBITO"
	default:
		return t
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney redondea a places decimales, separa miles con punto y decimales con coma.
// Ej: 1234567.5 con 2 → "1.234.567,50"
func formatMoney(d decimal.Decimal, places int32) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	intPart, frac, _ := strings.Cut(d.StringFixed(places), ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if frac != "" {
		buf = append(buf, ',')
		buf = append(buf, frac...)
	}
	return sign + string(buf)
}
