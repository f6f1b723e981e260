// Package ubl serializa facturas como documentos UBL 2.1 (Invoice-2).
package ubl

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/pkg/taxid"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	ublVersion = "2.1"
	dateLayout = "2006-01-02"

	// código de tipo de documento NIT
	nitSchemeName = "31"
)

// Códigos UNCL1001 por tipo de factura.
var typeCodes = map[string]string{
	entity.InvoiceTypeSales:      "380",
	entity.InvoiceTypePurchase:   "380",
	entity.InvoiceTypeCreditNote: "381",
	entity.InvoiceTypeDebitNote:  "383",
}

var _ billing.InvoiceXMLBuilder = (*InvoiceBuilder)(nil)

// InvoiceBuilder construye el XML UBL de una factura con su digest C14N.
type InvoiceBuilder struct{}

// NewInvoiceBuilder crea el builder.
func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{}
}

// BuildInvoiceXML genera el documento y el SHA-256 (hex) de su forma canónica.
// La salida depende solo de los datos de entrada.
func (b *InvoiceBuilder) BuildInvoiceXML(st billing.InvoiceStatement) ([]byte, string, error) {
	if st.Invoice == nil {
		return nil, "", fmt.Errorf("ubl: factura vacía")
	}
	doc := b.document(st)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("ubl: serializar: %w", err)
	}
	// La declaración XML no forma parte de la forma canónica.
	body := etree.NewDocument()
	body.SetRoot(doc.Root().Copy())
	rootBytes, err := body.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("ubl: serializar raíz: %w", err)
	}
	digest, err := Digest(rootBytes)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

// Digest canonicaliza el XML (C14N 1.0) y devuelve el SHA-256 en hexadecimal.
func Digest(xmlBytes []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(xmlBytes))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("ubl: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func (b *InvoiceBuilder) document(st billing.InvoiceStatement) *etree.Document {
	inv := st.Invoice
	cur := currencyCode(st)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", ublVersion)
	cbc(root, "ID", inv.InvoiceNumber)
	cbc(root, "UUID", inv.ID)
	cbc(root, "IssueDate", inv.InvoiceDate.Format(dateLayout))
	cbc(root, "DueDate", inv.DueDate.Format(dateLayout))
	cbc(root, "InvoiceTypeCode", typeCodes[inv.InvoiceType])
	if inv.Notes != "" {
		cbc(root, "Note", inv.Notes)
	}
	cbc(root, "DocumentCurrencyCode", cur)
	if inv.POReference != "" {
		ref := root.CreateElement("cac:OrderReference")
		cbc(ref, "ID", inv.POReference)
	}

	// En compras la empresa es el cliente y el tercero el proveedor.
	supplier, customer := companyParty(st.Company), partnerParty(st.Partner, inv.BusinessPartnerID)
	if inv.InvoiceType == entity.InvoiceTypePurchase {
		supplier, customer = customer, supplier
	}
	appendParty(root, "cac:AccountingSupplierParty", supplier)
	appendParty(root, "cac:AccountingCustomerParty", customer)

	for _, p := range st.Payments {
		if p.Status != entity.PaymentStatusCompleted || !p.IsActive {
			continue
		}
		pp := root.CreateElement("cac:PrepaidPayment")
		cbc(pp, "ID", p.PaymentNumber)
		amount(pp, "PaidAmount", p.Amount, cur)
		cbc(pp, "ReceivedDate", p.PaymentDate.Format(dateLayout))
	}

	tax := root.CreateElement("cac:TaxTotal")
	amount(tax, "TaxAmount", inv.TotalTax, cur)

	total := root.CreateElement("cac:LegalMonetaryTotal")
	amount(total, "LineExtensionAmount", inv.TotalBeforeTax, cur)
	amount(total, "TaxExclusiveAmount", inv.TotalBeforeTax, cur)
	amount(total, "TaxInclusiveAmount", inv.TotalAmount, cur)
	amount(total, "PrepaidAmount", inv.PaidAmount, cur)
	amount(total, "PayableAmount", inv.Balance, cur)

	doc.Indent(2)
	return doc
}

// party datos mínimos de una parte del documento.
type party struct {
	id, name, taxID, email, phone string

	// checkDigit DV del NIT colombiano; 0 si no aplica.
	checkDigit byte
}

func companyParty(c *entity.Company) party {
	if c == nil {
		return party{}
	}
	name := c.LegalName
	if name == "" {
		name = c.Name
	}
	p := party{id: c.Code, name: name, taxID: c.TaxID}
	if c.CountryCode == "CO" && c.TaxID != "" {
		base := taxid.NITBase(c.TaxID)
		if dv, err := taxid.NITCheckDigit(base); err == nil {
			p.taxID, p.checkDigit = base, dv
		}
	}
	return p
}

func partnerParty(p *entity.BusinessPartner, fallbackID string) party {
	if p == nil {
		return party{id: fallbackID}
	}
	return party{id: p.PartnerCode, name: p.PartnerName, taxID: p.TaxID, email: p.Email, phone: p.Phone}
}

func appendParty(root *etree.Element, tag string, p party) {
	wrap := root.CreateElement(tag)
	el := wrap.CreateElement("cac:Party")
	if p.id != "" {
		id := el.CreateElement("cac:PartyIdentification")
		cbc(id, "ID", p.id)
	}
	if p.name != "" {
		name := el.CreateElement("cac:PartyName")
		cbc(name, "Name", p.name)
	}
	if p.taxID != "" {
		scheme := el.CreateElement("cac:PartyTaxScheme")
		companyID := cbc(scheme, "CompanyID", p.taxID)
		if p.checkDigit != 0 {
			companyID.CreateAttr("schemeID", string(p.checkDigit))
			companyID.CreateAttr("schemeName", nitSchemeName)
		}
	}
	if p.email != "" || p.phone != "" {
		contact := el.CreateElement("cac:Contact")
		if p.phone != "" {
			cbc(contact, "Telephone", p.phone)
		}
		if p.email != "" {
			cbc(contact, "ElectronicMail", p.email)
		}
	}
}

func currencyCode(st billing.InvoiceStatement) string {
	if st.Currency != nil {
		return st.Currency.Code
	}
	return st.Invoice.CurrencyID
}

func cbc(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + tag)
	el.SetText(value)
	return el
}

func amount(parent *etree.Element, tag string, v decimal.Decimal, currency string) {
	el := cbc(parent, tag, v.StringFixed(2))
	el.CreateAttr("currencyID", currency)
}
