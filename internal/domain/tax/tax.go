package tax

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrUnknownTaxCode = errors.New("unknown tax code")

// Rate is one row of the tax table. Tax here is a lookup, not a formula: the
// invoice use case picks a code and applies its percentage, nothing more.
type Rate struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
}

// Table maps tax codes to rates.
type Table map[string]Rate

// DefaultTable returns the rates the shop bills with. VAT rows cover the 11%
// regime and the 12% regime that replaced it; insurance work is zero-rated
// because the insurer settles tax separately.
func DefaultTable() Table {
	return Table{
		"none":  {Code: "none", Name: "Zero-rated (insurance claim)", Percent: decimal.Zero},
		"vat11": {Code: "vat11", Name: "VAT 11%", Percent: decimal.NewFromInt(11)},
		"vat12": {Code: "vat12", Name: "VAT 12%", Percent: decimal.NewFromInt(12)},
	}
}

// Lookup resolves a code against the table.
func (t Table) Lookup(code string) (Rate, error) {
	r, ok := t[code]
	if !ok {
		return Rate{}, ErrUnknownTaxCode
	}
	return r, nil
}

// Apply computes the tax amount for a base value, rounded to 2 decimal places.
func (r Rate) Apply(base decimal.Decimal) decimal.Decimal {
	return base.Mul(r.Percent).Div(decimal.NewFromInt(100)).Round(2)
}
