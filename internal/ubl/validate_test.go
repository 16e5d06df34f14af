package ubl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/xrechnung/internal/ubl"
)

func serializedTestInvoice(t *testing.T) []byte {
	t.Helper()
	data, err := ubl.Serialize(buildTestDocument(t))
	require.NoError(t, err)
	return data
}

func TestCheckDocument_AcceptsGeneratedInvoice(t *testing.T) {
	result, err := ubl.CheckDocument(serializedTestInvoice(t))
	require.NoError(t, err)

	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestCheckDocument_DetectsMissingNumber(t *testing.T) {
	data := strings.Replace(string(serializedTestInvoice(t)),
		"<cbc:ID>2025-001</cbc:ID>", "<cbc:ID></cbc:ID>", 1)

	result, err := ubl.CheckDocument([]byte(data))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "missing invoice number")
}

func TestCheckDocument_DetectsTotalMismatch(t *testing.T) {
	data := strings.Replace(string(serializedTestInvoice(t)),
		">1767.15<", ">1767.16<", 1)

	result, err := ubl.CheckDocument([]byte(data))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "total mismatch")
}

func TestCheckDocument_DetectsLineSumMismatch(t *testing.T) {
	data := strings.Replace(string(serializedTestInvoice(t)),
		">770.00<", ">771.00<", 1)

	result, err := ubl.CheckDocument([]byte(data))
	require.NoError(t, err)

	assert.False(t, result.Valid)
}

func TestCheckDocument_RejectsNonInvoiceXML(t *testing.T) {
	_, err := ubl.CheckDocument([]byte(`<?xml version="1.0"?><Order><cbc:ID>1</cbc:ID></Order>`))
	assert.Error(t, err)
}

func TestCheckDocument_RejectsGarbage(t *testing.T) {
	_, err := ubl.CheckDocument([]byte("not xml at all"))
	assert.Error(t, err)
}
