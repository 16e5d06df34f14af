// Package xrechnunglib provides a public API for generating XRechnung
// (EN 16931) conformant UBL invoices from typed billing data.
//
// Example usage:
//
//	xml, err := xrechnunglib.Generate(supplier, buyer, bill, items)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("invoice.xml", xml, 0o644)
package xrechnunglib

import (
	"github.com/rezonia/xrechnung/internal/compute"
	"github.com/rezonia/xrechnung/internal/model"
	"github.com/rezonia/xrechnung/internal/ubl"
)

// Re-export core types for public API
type (
	Address   = model.Address
	Supplier  = model.Supplier
	Buyer     = model.Buyer
	Period    = model.Period
	Bill      = model.Bill
	HoursItem = model.HoursItem
	Totals    = compute.Totals
)

// Re-export error types
type (
	InputError        = model.InputError
	MissingFieldError = model.MissingFieldError
	DateOverflowError = model.DateOverflowError
	EncodingError     = model.EncodingError
)

// ComputeTotals derives the monetary totals and due date for an invoice
// without assembling the document.
func ComputeTotals(bill Bill, buyer Buyer, items []HoursItem) (Totals, error) {
	return compute.Compute(bill, buyer, items)
}

// Generate runs the full pipeline: derive totals, assemble the UBL element
// tree, and serialize it to a UTF-8 XML byte stream. On any failure no
// partial output is produced.
func Generate(supplier Supplier, buyer Buyer, bill Bill, items []HoursItem) ([]byte, error) {
	totals, err := compute.Compute(bill, buyer, items)
	if err != nil {
		return nil, err
	}

	doc, err := ubl.NewAssembler().Build(supplier, buyer, bill, items, totals)
	if err != nil {
		return nil, err
	}

	return ubl.Serialize(doc)
}
