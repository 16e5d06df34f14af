// Package ubl assembles an EN 16931 / XRechnung conformant UBL invoice
// document and serializes it to XML.
package ubl

// UBL namespace URIs bound to the conventional prefixes used in the tree.
const (
	NamespaceInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NamespaceCAC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NamespaceCBC     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// Profile identifiers of the XRechnung 3.0 UBL profile.
const (
	CustomizationID = "urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:xrechnung_3.0"
	ProfileID       = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
)

// InvoiceTypeCode is an UNTDID 1001 document type code.
type InvoiceTypeCode string

// PaymentMeansCode is an UNTDID 4461 payment means code.
type PaymentMeansCode string

// UnitCode is a UN/ECE Recommendation 20 unit of measure code.
type UnitCode string

// TaxCategoryCode is an UNTDID 5305 duty/tax category code.
type TaxCategoryCode string

// TaxSchemeID identifies the tax scheme of a tax category.
type TaxSchemeID string

// EndpointSchemeID qualifies an electronic endpoint identifier (EAS list).
type EndpointSchemeID string

// The supported feature subset has exactly one valid value per code list.
const (
	// TypeCommercialInvoice is the UNTDID 1001 code for a commercial invoice.
	TypeCommercialInvoice InvoiceTypeCode = "380"

	// MeansCreditTransfer is payment to a bank account.
	MeansCreditTransfer PaymentMeansCode = "42"

	// UnitHour is the UN/ECE Rec 20 code for one hour of work.
	UnitHour UnitCode = "HUR"

	// CategoryStandardRate is the standard VAT rate category.
	CategoryStandardRate TaxCategoryCode = "S"

	// SchemeVAT is the value added tax scheme.
	SchemeVAT TaxSchemeID = "VAT"

	// EndpointEmail marks email addresses as the electronic contact points.
	EndpointEmail EndpointSchemeID = "EM"
)

func (c InvoiceTypeCode) String() string { return string(c) }

func (c PaymentMeansCode) String() string { return string(c) }

func (c UnitCode) String() string { return string(c) }

func (c TaxCategoryCode) String() string { return string(c) }

func (c TaxSchemeID) String() string { return string(c) }

func (c EndpointSchemeID) String() string { return string(c) }
