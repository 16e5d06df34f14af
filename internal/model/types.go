// Package model defines the domain value types an XRechnung invoice is built
// from. All types are immutable snapshots: they are constructed and validated
// once at the boundary and passed by value afterwards.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is a postal address of an invoicing party.
type Address struct {
	// AddressLine is the first line of the address, usually street name and
	// number or a P.O. box.
	AddressLine string `mapstructure:"address_line" json:"address_line"`

	City string `mapstructure:"city" json:"city"`

	// PostCode is the country-specific postal code.
	PostCode string `mapstructure:"post_code" json:"post_code"`

	// CountryCode is the ISO 3166-1 alpha-2 code of the country.
	CountryCode string `mapstructure:"country_code" json:"country_code"`
}

// Validate checks the address invariants.
func (a Address) Validate() error {
	if a.CountryCode == "" {
		return NewMissingFieldError("address", "country_code")
	}
	if !isAlpha2(a.CountryCode) {
		return NewInputError("country_code", a.CountryCode, "must be a 2-letter ISO 3166-1 code")
	}
	return nil
}

// Supplier is the invoicing party issuing the invoice. The bank account
// fields are required because they feed the UBL payment means block.
type Supplier struct {
	Name string `mapstructure:"name" json:"name"`

	// TaxIdentification is the VAT number assigned by the tax office.
	TaxIdentification string `mapstructure:"tax_identification" json:"tax_identification"`

	Address Address `mapstructure:"address" json:"address"`

	Phone string `mapstructure:"phone" json:"phone"`

	// Email is the main contact point of the supplier and doubles as its
	// electronic endpoint identifier in the document.
	Email string `mapstructure:"email" json:"email"`

	IBAN string `mapstructure:"iban" json:"iban"`
	BIC  string `mapstructure:"bic" json:"bic"`
}

// Validate checks the supplier invariants.
func (s Supplier) Validate() error {
	if s.Name == "" {
		return NewMissingFieldError("supplier", "name")
	}
	if s.TaxIdentification == "" {
		return NewMissingFieldError("supplier", "tax_identification")
	}
	if s.IBAN == "" {
		return NewMissingFieldError("supplier", "iban")
	}
	if s.BIC == "" {
		return NewMissingFieldError("supplier", "bic")
	}
	return s.Address.Validate()
}

// Buyer is the party receiving the invoice.
type Buyer struct {
	Name string `mapstructure:"name" json:"name"`

	TaxIdentification string `mapstructure:"tax_identification" json:"tax_identification"`

	Address Address `mapstructure:"address" json:"address"`

	Email string `mapstructure:"email" json:"email"`

	// Reference can be an order number, an internal project number or a
	// buyer contact. Public-sector buyers require it (BuyerReference).
	Reference string `mapstructure:"reference" json:"reference"`

	// DueAfterDays is the number of calendar days after the issue date at
	// which invoices for this buyer are due.
	DueAfterDays int `mapstructure:"due_after_days" json:"due_after_days"`
}

// Validate checks the buyer invariants.
func (b Buyer) Validate() error {
	if b.Name == "" {
		return NewMissingFieldError("buyer", "name")
	}
	if b.TaxIdentification == "" {
		return NewMissingFieldError("buyer", "tax_identification")
	}
	return b.Address.Validate()
}

// Period is a date range, used for the billing period of the whole invoice
// and for single-day work periods on invoice lines.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewPeriod builds a period, rejecting ranges where start is after end.
func NewPeriod(start, end time.Time) (Period, error) {
	if start.After(end) {
		return Period{}, NewInputError("period", start.Format(DateFormat), "start date is after end date")
	}
	return Period{Start: start, End: end}, nil
}

// Bill holds the metadata of one invoice.
type Bill struct {
	// Number is the unique invoice number, supplied by the caller.
	Number string `json:"number"`

	// Currency is the ISO 4217 document currency, e.g. EUR.
	Currency string `json:"currency"`

	// VATPercent is the VAT rate applied to the invoice total.
	VATPercent decimal.Decimal `json:"vat_percent"`

	IssueDate time.Time `json:"issue_date"`

	// Period is the optional billing period of the invoice.
	Period *Period `json:"period,omitempty"`
}

// NewBill builds invoice metadata, rejecting empty numbers and negative VAT.
func NewBill(number, currency string, vatPercent decimal.Decimal, issueDate time.Time, period *Period) (Bill, error) {
	b := Bill{
		Number:     number,
		Currency:   currency,
		VATPercent: vatPercent,
		IssueDate:  issueDate,
		Period:     period,
	}
	return b, b.Validate()
}

// Validate checks the bill invariants.
func (b Bill) Validate() error {
	if b.Number == "" {
		return NewMissingFieldError("bill", "number")
	}
	if b.Currency == "" {
		return NewMissingFieldError("bill", "currency")
	}
	if b.VATPercent.IsNegative() {
		return NewInputError("vat_percent", b.VATPercent.String(), "must not be negative")
	}
	if b.Period != nil && b.Period.Start.After(b.Period.End) {
		return NewInputError("period", b.Period.Start.Format(DateFormat), "start date is after end date")
	}
	return nil
}

// HoursItem is one billable invoice line of hourly work.
type HoursItem struct {
	// Name describes the work, e.g. "Development" or "Consulting".
	Name string `json:"name"`

	// Quantity is the number of hours worked, fractional hours allowed.
	Quantity decimal.Decimal `json:"quantity"`

	// HourlyRate is the price of one hour in the document currency.
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	// Date is the day the work was performed, if known.
	Date *time.Time `json:"date,omitempty"`
}

// Validate checks the line-item invariants.
func (h HoursItem) Validate() error {
	if !h.Quantity.IsPositive() {
		return NewInputError("quantity", h.Quantity.String(), "must be greater than zero")
	}
	if h.HourlyRate.IsNegative() {
		return NewInputError("hourly_rate", h.HourlyRate.String(), "must not be negative")
	}
	return nil
}

// DateFormat is the ISO 8601 date layout used throughout the document.
const DateFormat = "2006-01-02"

func isAlpha2(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, c := range s {
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
