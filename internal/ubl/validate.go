package ubl

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/xrechnung/internal/money"
)

// CheckResult holds the findings of a structural document check.
type CheckResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// CheckDocument re-reads a serialized invoice and verifies the checks a
// receiving portal applies first: required identifiers, party data, and the
// arithmetic between the declared totals. It is not a schema validation; it
// catches the rejections that are cheap to catch before submission.
func CheckDocument(data []byte) (*CheckResult, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty XML document")
	}
	if root.Tag != "Invoice" {
		return nil, fmt.Errorf("root element is %s, expected Invoice", root.FullTag())
	}

	result := &CheckResult{Valid: true}

	requireText(result, root, "cbc:ID", "invoice number")
	requireText(result, root, "cbc:IssueDate", "issue date")
	requireText(result, root, "cbc:DueDate", "due date")
	requireText(result, root, "cbc:InvoiceTypeCode", "invoice type code")
	requireText(result, root, "cbc:DocumentCurrencyCode", "currency code")

	requireText(result, root, "cac:AccountingSupplierParty/cac:Party/cac:PartyLegalEntity/cbc:RegistrationName", "supplier name")
	requireText(result, root, "cac:AccountingSupplierParty/cac:Party/cac:PartyTaxScheme/cbc:CompanyID", "supplier tax identification")
	requireText(result, root, "cac:AccountingCustomerParty/cac:Party/cac:PartyLegalEntity/cbc:RegistrationName", "buyer name")
	requireText(result, root, "cac:PaymentMeans/cac:PayeeFinancialAccount/cbc:ID", "supplier IBAN")

	lines := root.FindElements("cac:InvoiceLine")
	if len(lines) == 0 {
		fail(result, "document has no invoice lines")
	}

	checkTotals(result, root, lines)

	return result, nil
}

func requireText(result *CheckResult, root *etree.Element, path, what string) {
	e := root.FindElement(path)
	if e == nil || e.Text() == "" {
		fail(result, "missing "+what)
	}
}

func fail(result *CheckResult, message string) {
	result.Valid = false
	result.Errors = append(result.Errors, message)
}

func checkTotals(result *CheckResult, root *etree.Element, lines []*etree.Element) {
	net, okNet := amountOf(root, "cac:LegalMonetaryTotal/cbc:TaxExclusiveAmount")
	tax, okTax := amountOf(root, "cac:TaxTotal/cbc:TaxAmount")
	gross, okGross := amountOf(root, "cac:LegalMonetaryTotal/cbc:TaxInclusiveAmount")
	payable, okPayable := amountOf(root, "cac:LegalMonetaryTotal/cbc:PayableAmount")

	if !okNet || !okTax || !okGross {
		fail(result, "missing or unparseable monetary totals")
		return
	}

	if !net.Add(tax).Equal(gross) {
		fail(result, fmt.Sprintf("total mismatch: net(%s) + tax(%s) != gross(%s)",
			money.Format(net), money.Format(tax), money.Format(gross)))
	}
	if okPayable && !payable.Equal(gross) {
		result.Warnings = append(result.Warnings, "payable amount differs from tax-inclusive amount")
	}

	lineSum := decimal.Zero
	allParsed := true
	for _, line := range lines {
		v, ok := amountOf(line, "cbc:LineExtensionAmount")
		if !ok {
			allParsed = false
			continue
		}
		lineSum = lineSum.Add(v)
	}
	if allParsed && len(lines) > 0 && !lineSum.Equal(net) {
		fail(result, fmt.Sprintf("line extension amounts sum to %s but net total is %s",
			money.Format(lineSum), money.Format(net)))
	}
}

func amountOf(e *etree.Element, path string) (decimal.Decimal, bool) {
	elem := e.FindElement(path)
	if elem == nil {
		return decimal.Zero, false
	}
	v, err := money.FromString(elem.Text())
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
