package ubl

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/xrechnung/internal/compute"
	"github.com/rezonia/xrechnung/internal/model"
	"github.com/rezonia/xrechnung/internal/money"
)

// Assembler maps the domain model plus computed totals onto a UBL Invoice
// element tree. Element ordering is fixed: the XRechnung schema validates the
// order of aggregate components, so siblings are appended in profile order
// and never rearranged.
type Assembler struct{}

// NewAssembler creates a new assembler
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Build assembles the invoice document for the given parties, bill metadata,
// line items, and precomputed totals. Party data is checked for the mandatory
// fields the profile requires; computation failures are expected to have been
// surfaced before Build is called.
func (a *Assembler) Build(supplier model.Supplier, buyer model.Buyer, bill model.Bill, items []model.HoursItem, totals compute.Totals) (*etree.Document, error) {
	if err := supplier.Validate(); err != nil {
		return nil, err
	}
	if err := buyer.Validate(); err != nil {
		return nil, err
	}
	if err := bill.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.NewInputError("items", "", "invoice must contain at least one line item")
	}

	doc := etree.NewDocument()
	root := doc.CreateElement("ubl:Invoice")
	root.CreateAttr("xmlns:ubl", NamespaceInvoice)
	root.CreateAttr("xmlns:cac", NamespaceCAC)
	root.CreateAttr("xmlns:cbc", NamespaceCBC)

	leaf(root, "cbc:CustomizationID", CustomizationID)
	leaf(root, "cbc:ProfileID", ProfileID)
	leaf(root, "cbc:ID", bill.Number)
	leaf(root, "cbc:IssueDate", bill.IssueDate.Format(model.DateFormat))
	leaf(root, "cbc:DueDate", totals.DueDate.Format(model.DateFormat))
	leaf(root, "cbc:InvoiceTypeCode", TypeCommercialInvoice.String())
	leaf(root, "cbc:DocumentCurrencyCode", bill.Currency)
	leaf(root, "cbc:BuyerReference", buyer.Reference)

	if bill.Period != nil {
		addPeriod(root, *bill.Period)
	}

	addSupplierParty(root, supplier)
	addCustomerParty(root, buyer)
	addDelivery(root, bill.IssueDate)
	addPaymentMeans(root, supplier)
	addTaxTotal(root, bill, totals)
	addMonetaryTotal(root, bill, totals)

	for i, item := range items {
		addInvoiceLine(root, i+1, bill, item)
	}

	return doc, nil
}

// leaf appends a child element holding only text.
func leaf(parent *etree.Element, tag, text string) *etree.Element {
	e := parent.CreateElement(tag)
	e.SetText(text)
	return e
}

// amount appends a two-decimal amount element carrying the currencyID
// attribute the profile requires on every monetary value.
func amount(parent *etree.Element, tag, currency string, value decimal.Decimal) *etree.Element {
	e := parent.CreateElement(tag)
	e.CreateAttr("currencyID", currency)
	e.SetText(money.Format(value))
	return e
}

func addPeriod(parent *etree.Element, period model.Period) {
	e := parent.CreateElement("cac:InvoicePeriod")
	leaf(e, "cbc:StartDate", period.Start.Format(model.DateFormat))
	leaf(e, "cbc:EndDate", period.End.Format(model.DateFormat))
}

func addEndpoint(parent *etree.Element, email string) {
	e := leaf(parent, "cbc:EndpointID", email)
	e.CreateAttr("schemeID", EndpointEmail.String())
}

func addAddress(parent *etree.Element, address model.Address) {
	e := parent.CreateElement("cac:PostalAddress")
	leaf(e, "cbc:StreetName", address.AddressLine)
	leaf(e, "cbc:CityName", address.City)
	leaf(e, "cbc:PostalZone", address.PostCode)
	country := e.CreateElement("cac:Country")
	leaf(country, "cbc:IdentificationCode", address.CountryCode)
}

func addTaxScheme(parent *etree.Element) {
	e := parent.CreateElement("cac:TaxScheme")
	leaf(e, "cbc:ID", SchemeVAT.String())
}

func addPartyTaxScheme(parent *etree.Element, taxID string) {
	e := parent.CreateElement("cac:PartyTaxScheme")
	leaf(e, "cbc:CompanyID", taxID)
	addTaxScheme(e)
}

func addLegalEntity(parent *etree.Element, name, taxID string) {
	e := parent.CreateElement("cac:PartyLegalEntity")
	leaf(e, "cbc:RegistrationName", name)
	leaf(e, "cbc:CompanyID", taxID)
}

func addSupplierParty(parent *etree.Element, supplier model.Supplier) {
	party := parent.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
	addEndpoint(party, supplier.Email)
	addAddress(party, supplier.Address)
	addPartyTaxScheme(party, supplier.TaxIdentification)
	addLegalEntity(party, supplier.Name, supplier.TaxIdentification)

	contact := party.CreateElement("cac:Contact")
	leaf(contact, "cbc:Name", supplier.Name)
	leaf(contact, "cbc:Telephone", supplier.Phone)
	leaf(contact, "cbc:ElectronicMail", supplier.Email)
}

// addCustomerParty mirrors the supplier block shape but omits bank details
// and the contact block, matching the minimal buyer data the profile needs.
func addCustomerParty(parent *etree.Element, buyer model.Buyer) {
	party := parent.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	addEndpoint(party, buyer.Email)
	addAddress(party, buyer.Address)
	addLegalEntity(party, buyer.Name, buyer.TaxIdentification)
}

func addDelivery(parent *etree.Element, issueDate time.Time) {
	e := parent.CreateElement("cac:Delivery")
	leaf(e, "cbc:ActualDeliveryDate", issueDate.Format(model.DateFormat))
}

func addPaymentMeans(parent *etree.Element, supplier model.Supplier) {
	e := parent.CreateElement("cac:PaymentMeans")
	leaf(e, "cbc:PaymentMeansCode", MeansCreditTransfer.String())

	account := e.CreateElement("cac:PayeeFinancialAccount")
	leaf(account, "cbc:ID", supplier.IBAN)
	leaf(account, "cbc:Name", supplier.Name)
	branch := account.CreateElement("cac:FinancialInstitutionBranch")
	leaf(branch, "cbc:ID", supplier.BIC)
}

func addTaxTotal(parent *etree.Element, bill model.Bill, totals compute.Totals) {
	e := parent.CreateElement("cac:TaxTotal")
	amount(e, "cbc:TaxAmount", bill.Currency, totals.TaxAmount)

	subtotal := e.CreateElement("cac:TaxSubtotal")
	amount(subtotal, "cbc:TaxableAmount", bill.Currency, totals.NetTotal)
	amount(subtotal, "cbc:TaxAmount", bill.Currency, totals.TaxAmount)

	category := subtotal.CreateElement("cac:TaxCategory")
	leaf(category, "cbc:ID", CategoryStandardRate.String())
	leaf(category, "cbc:Percent", money.Format(bill.VATPercent))
	addTaxScheme(category)
}

func addMonetaryTotal(parent *etree.Element, bill model.Bill, totals compute.Totals) {
	e := parent.CreateElement("cac:LegalMonetaryTotal")
	amount(e, "cbc:LineExtensionAmount", bill.Currency, totals.NetTotal)
	amount(e, "cbc:TaxExclusiveAmount", bill.Currency, totals.NetTotal)
	amount(e, "cbc:TaxInclusiveAmount", bill.Currency, totals.GrossTotal)
	amount(e, "cbc:AllowanceTotalAmount", bill.Currency, money.Zero)
	amount(e, "cbc:ChargeTotalAmount", bill.Currency, money.Zero)
	amount(e, "cbc:PrepaidAmount", bill.Currency, money.Zero)
	amount(e, "cbc:PayableRoundingAmount", bill.Currency, money.Zero)
	// no prepayments or allowances are modeled, so payable equals gross
	amount(e, "cbc:PayableAmount", bill.Currency, totals.GrossTotal)
}

func addClassifiedTaxCategory(parent *etree.Element, vatPercent decimal.Decimal) {
	e := parent.CreateElement("cac:ClassifiedTaxCategory")
	leaf(e, "cbc:ID", CategoryStandardRate.String())
	leaf(e, "cbc:Percent", money.Format(vatPercent))
	addTaxScheme(e)
}

func addInvoiceLine(parent *etree.Element, id int, bill model.Bill, item model.HoursItem) {
	line := parent.CreateElement("cac:InvoiceLine")
	leaf(line, "cbc:ID", fmt.Sprintf("%d", id))

	quantity := leaf(line, "cbc:InvoicedQuantity", money.Format(item.Quantity))
	quantity.CreateAttr("unitCode", UnitHour.String())

	amount(line, "cbc:LineExtensionAmount", bill.Currency, compute.LineNet(item))

	// a dated line is billed as a single-day work period
	if item.Date != nil {
		addPeriod(line, model.Period{Start: *item.Date, End: *item.Date})
	}

	itemElem := line.CreateElement("cac:Item")
	leaf(itemElem, "cbc:Description", lineDescription(bill.Currency, item))
	leaf(itemElem, "cbc:Name", item.Name)
	addClassifiedTaxCategory(itemElem, bill.VATPercent)

	price := line.CreateElement("cac:Price")
	amount(price, "cbc:PriceAmount", bill.Currency, item.HourlyRate)
}

// lineDescription renders the work date and hourly rate as free text; the
// targeted profile subset has no structured price-breakdown element covering
// dated hourly work.
func lineDescription(currency string, item model.HoursItem) string {
	if item.Date != nil {
		return fmt.Sprintf("Work performed on %s at an hourly rate of %s %s",
			item.Date.Format(model.DateFormat), money.Format(item.HourlyRate), currency)
	}
	return fmt.Sprintf("Hourly rate of %s %s", money.Format(item.HourlyRate), currency)
}
