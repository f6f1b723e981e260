package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in     string
		places int32
		want   string
	}{
		{"0", 2, "0,00"},
		{"999", 0, "999"},
		{"1000", 0, "1.000"},
		{"1234567.5", 2, "1.234.567,50"},
		{"-700.126", 2, "-700,13"},
		{"12.5", 4, "12,5000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, formatMoney(decimal.RequireFromString(c.in), c.places), c.in)
	}
}
