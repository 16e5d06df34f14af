// Package compute derives the monetary totals and the due date of an invoice
// from its line items. It is a pure transform: no I/O, no shared state, safe
// to run concurrently for independent invoices.
package compute

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/xrechnung/internal/model"
	"github.com/rezonia/xrechnung/internal/money"
)

// Totals is the derived monetary summary of one invoice.
type Totals struct {
	// NetTotal is the sum of all line net amounts at full precision.
	NetTotal decimal.Decimal

	// TaxAmount is round-half-up(NetTotal * VAT% / 100, 2). It is computed
	// from the invoice net total, never by summing per-line taxes, so it
	// matches what portal validators recompute from the declared rate.
	TaxAmount decimal.Decimal

	// GrossTotal is NetTotal + TaxAmount at two-decimal precision.
	GrossTotal decimal.Decimal

	// DueDate is the issue date plus the buyer's payment term in days.
	DueDate time.Time
}

// LineNet returns the net amount of a single line at full precision.
func LineNet(item model.HoursItem) decimal.Decimal {
	return item.Quantity.Mul(item.HourlyRate)
}

// Compute derives the invoice totals for the given bill, buyer, and ordered
// line items. It fails with an input error when the item list is empty, a
// quantity or rate is out of range, or the VAT percentage is negative, and
// with a date-overflow error when the due date leaves the representable
// XSD date range.
func Compute(bill model.Bill, buyer model.Buyer, items []model.HoursItem) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, model.NewInputError("items", "", "invoice must contain at least one line item")
	}
	if bill.VATPercent.IsNegative() {
		return Totals{}, model.NewInputError("vat_percent", bill.VATPercent.String(), "must not be negative")
	}

	nets := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Totals{}, err
		}
		nets = append(nets, LineNet(item))
	}

	net := money.Sum(nets)
	tax := money.VAT(net, bill.VATPercent)
	gross := money.Round2(net).Add(tax)

	due, err := dueDate(bill.IssueDate, buyer.DueAfterDays)
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		NetTotal:   net,
		TaxAmount:  tax,
		GrossTotal: gross,
		DueDate:    due,
	}, nil
}

// dueDate adds the payment term in plain calendar days. Years outside
// [1, 9999] cannot be expressed as an XSD date and are treated as overflow.
func dueDate(issue time.Time, days int) (time.Time, error) {
	due := issue.AddDate(0, 0, days)
	if due.Year() < 1 || due.Year() > 9999 {
		return time.Time{}, model.NewDateOverflowError(issue.Format(model.DateFormat), days)
	}
	return due, nil
}
