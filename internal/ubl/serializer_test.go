package ubl_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/xrechnung/internal/compute"
	"github.com/rezonia/xrechnung/internal/model"
	"github.com/rezonia/xrechnung/internal/ubl"
)

func TestSerialize_DeclarationAndRoot(t *testing.T) {
	data, err := ubl.Serialize(buildTestDocument(t))
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="UTF-8"?>`),
		"output must start with the XML declaration, got: %.60s", text)
	assert.Contains(t, text, "<ubl:Invoice")
	assert.Contains(t, text, `xmlns:ubl="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(text), "</ubl:Invoice>"))
}

func TestSerialize_Deterministic(t *testing.T) {
	doc := buildTestDocument(t)

	first, err := ubl.Serialize(doc)
	require.NoError(t, err)
	second, err := ubl.Serialize(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// a freshly assembled document from equal inputs is byte-identical too
	third, err := ubl.Serialize(buildTestDocument(t))
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestSerialize_EscapesReservedCharacters(t *testing.T) {
	supplier := testSupplier()
	supplier.Name = `Müller & Söhne <GmbH>`

	totals, err := compute.Compute(testBill(), testBuyer(), testItems())
	require.NoError(t, err)

	doc, err := ubl.NewAssembler().Build(supplier, testBuyer(), testBill(), testItems(), totals)
	require.NoError(t, err)

	data, err := ubl.Serialize(doc)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Müller &amp; Söhne &lt;GmbH&gt;")
	assert.NotContains(t, text, "<GmbH>")

	// the escaped document round-trips
	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(data))
	name := parsed.Root().FindElement("cac:AccountingSupplierParty/cac:Party/cac:PartyLegalEntity/cbc:RegistrationName")
	require.NotNil(t, name)
	assert.Equal(t, `Müller & Söhne <GmbH>`, name.Text())
}

func TestSerialize_PreservesSiblingOrder(t *testing.T) {
	data, err := ubl.Serialize(buildTestDocument(t))
	require.NoError(t, err)

	text := string(data)
	// spot-check the profile order on the serialized form
	assert.Less(t, strings.Index(text, "<cbc:CustomizationID>"), strings.Index(text, "<cbc:ID>"))
	assert.Less(t, strings.Index(text, "<cbc:IssueDate>"), strings.Index(text, "<cbc:DueDate>"))
	assert.Less(t, strings.Index(text, "<cac:AccountingSupplierParty>"), strings.Index(text, "<cac:AccountingCustomerParty>"))
	assert.Less(t, strings.Index(text, "<cac:TaxTotal>"), strings.Index(text, "<cac:LegalMonetaryTotal>"))
	assert.Less(t, strings.Index(text, "<cac:LegalMonetaryTotal>"), strings.Index(text, "<cac:InvoiceLine>"))
}

func TestSerialize_RejectsInvalidUTF8(t *testing.T) {
	doc := buildTestDocument(t)
	name := doc.Root().FindElement("cac:AccountingSupplierParty/cac:Party/cac:PartyLegalEntity/cbc:RegistrationName")
	require.NotNil(t, name)
	name.SetText("torn\xff\xfetext")

	_, err := ubl.Serialize(doc)

	var encodingErr *model.EncodingError
	require.ErrorAs(t, err, &encodingErr)
}

func TestSerialize_EmptyDocument(t *testing.T) {
	_, err := ubl.Serialize(etree.NewDocument())

	var encodingErr *model.EncodingError
	require.ErrorAs(t, err, &encodingErr)
}
