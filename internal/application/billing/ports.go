package billing

import (
	"context"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// SettlementTxRunner ejecuta fn dentro de una transacción con el repositorio de facturas atado a ella.
// Si fn devuelve error se hace rollback.
type SettlementTxRunner interface {
	RunSettlement(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error
}

// InvoiceStatement datos necesarios para exportar una factura (PDF o XML).
// Partner, Currency y Company pueden ser nil si el registro ya no existe.
type InvoiceStatement struct {
	Invoice  *entity.Invoice
	Company  *entity.Company
	Partner  *entity.BusinessPartner
	Currency *entity.Currency
	Payments []*entity.Payment
}

// InvoicePDFGenerator genera el estado de cuenta de una factura en PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, st InvoiceStatement) ([]byte, error)
}

// InvoiceXMLBuilder construye el documento UBL de una factura.
// Devuelve el XML serializado y un digest estable de su forma canónica (C14N).
type InvoiceXMLBuilder interface {
	BuildInvoiceXML(st InvoiceStatement) (xml []byte, digest string, err error)
}
