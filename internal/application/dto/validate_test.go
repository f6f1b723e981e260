package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/domain"
)

func TestValidate_CamposObligatorios(t *testing.T) {
	err := Validate(CreateFiscalYearRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "company_id es obligatorio")
	assert.Contains(t, err.Error(), "start_date es obligatorio")
}

func TestValidate_FormatoFecha(t *testing.T) {
	req := CreateFiscalYearRequest{
		CompanyID: "7f6d1f0e-2b1a-4c55-9a0e-1d2f3a4b5c6d",
		Code:      "FY2024",
		Name:      "Año 2024",
		StartDate: "01/01/2024",
		EndDate:   "2024-12-31",
	}
	err := Validate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date debe tener formato YYYY-MM-DD")
}

func TestValidate_Enum(t *testing.T) {
	req := CreateJournalRequest{
		CompanyID:   "7f6d1f0e-2b1a-4c55-9a0e-1d2f3a4b5c6d",
		JournalCode: "VTA",
		JournalName: "Ventas",
		JournalType: "OTRO",
	}
	err := Validate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal_type debe ser uno de")
}

func TestValidate_Valido(t *testing.T) {
	req := CreatePaymentRequest{
		CompanyID:         "7f6d1f0e-2b1a-4c55-9a0e-1d2f3a4b5c6d",
		PaymentNumber:     "PAY-1",
		PaymentType:       "RECEIVED",
		BusinessPartnerID: "0b7c2f52-8d0a-4b8e-9c1d-2e3f4a5b6c7d",
		PaymentDate:       "2024-03-01",
		CurrencyID:        "5d1e0a9b-3c2f-4d6e-8a7b-9c0d1e2f3a4b",
		PaymentMethod:     "CASH",
	}
	assert.NoError(t, Validate(req))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("start_date", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("start_date", "2024-02-30")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	p, err := ParseOptionalDate("from", "")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Nil(t, FormatOptionalDate(nil))
}
