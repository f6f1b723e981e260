package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// ExportUseCase genera las representaciones de una factura: estado de cuenta PDF y UBL XML.
type ExportUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	companyRepo  repository.CompanyRepository
	partnerRepo  repository.BusinessPartnerRepository
	currencyRepo repository.CurrencyRepository
	paymentRepo  repository.PaymentRepository
	pdf          InvoicePDFGenerator
	xml          InvoiceXMLBuilder
}

// NewExportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewExportUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	partnerRepo repository.BusinessPartnerRepository,
	currencyRepo repository.CurrencyRepository,
	paymentRepo repository.PaymentRepository,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLBuilder,
) *ExportUseCase {
	return &ExportUseCase{
		invoiceRepo:  invoiceRepo,
		companyRepo:  companyRepo,
		partnerRepo:  partnerRepo,
		currencyRepo: currencyRepo,
		paymentRepo:  paymentRepo,
		pdf:          pdf,
		xml:          xml,
	}
}

// DownloadInvoicePDF devuelve el PDF y el nombre de archivo sugerido.
func (uc *ExportUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	st, err := uc.statement(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateInvoicePDF(ctx, st)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", st.Invoice.InvoiceNumber), nil
}

// DownloadInvoiceXML devuelve el UBL, el digest SHA-256 de su forma canónica y el nombre de archivo.
func (uc *ExportUseCase) DownloadInvoiceXML(ctx context.Context, invoiceID string) (xmlBytes []byte, digest, filename string, err error) {
	st, err := uc.statement(ctx, invoiceID)
	if err != nil {
		return nil, "", "", err
	}
	xmlBytes, digest, err = uc.xml.BuildInvoiceXML(st)
	if err != nil {
		return nil, "", "", fmt.Errorf("xml: construcción fallida: %w", err)
	}
	return xmlBytes, digest, fmt.Sprintf("factura_%s.xml", st.Invoice.InvoiceNumber), nil
}

// statement reúne la factura con su empresa, tercero, moneda y pagos.
// Solo la ausencia de la factura es un error; el resto queda nil si no existe.
func (uc *ExportUseCase) statement(ctx context.Context, invoiceID string) (InvoiceStatement, error) {
	// ── 1. Factura ────────────────────────────────────────────────────────────
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return InvoiceStatement{}, fmt.Errorf("export: obtener factura: %w", err)
	}
	if inv == nil {
		return InvoiceStatement{}, fmt.Errorf("%w: factura %s", domain.ErrNotFound, invoiceID)
	}
	st := InvoiceStatement{Invoice: inv}

	// ── 2. Empresa, tercero y moneda ─────────────────────────────────────────
	if st.Company, err = uc.companyRepo.GetByID(ctx, inv.CompanyID); err != nil {
		return InvoiceStatement{}, fmt.Errorf("export: obtener empresa: %w", err)
	}
	if st.Partner, err = uc.partnerRepo.GetByID(ctx, inv.BusinessPartnerID); err != nil {
		return InvoiceStatement{}, fmt.Errorf("export: obtener tercero: %w", err)
	}
	if st.Currency, err = uc.currencyRepo.GetByID(ctx, inv.CurrencyID); err != nil {
		return InvoiceStatement{}, fmt.Errorf("export: obtener moneda: %w", err)
	}

	// ── 3. Pagos vinculados ──────────────────────────────────────────────────
	if st.Payments, err = uc.paymentRepo.ListByInvoice(ctx, inv.ID); err != nil {
		return InvoiceStatement{}, fmt.Errorf("export: obtener pagos: %w", err)
	}
	return st, nil
}
