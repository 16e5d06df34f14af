package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/xrechnung/internal/config"
	"github.com/rezonia/xrechnung/internal/model"
)

const testConfig = `currency = "EUR"
vat_percent = 19.0

[supplier]
name = "Hans Muster"
tax_identification = "DE123456789"
phone = "+49 30 1234567"
email = "hans@muster.example.com"
iban = "DE89370400440532013000"
bic = "COBADEFFXXX"

[supplier.address]
address_line = "Musterstraße 1"
city = "Berlin"
post_code = "10115"
country_code = "DE"

[[buyer]]
name = "Client Company"
tax_identification = "DE111111111"
email = "mail@client1.example.com"
reference = "04011000-1234-03"
due_after_days = 20

[buyer.address]
address_line = "Beispielweg 2"
city = "München"
post_code = "80331"
country_code = "DE"

[[buyer]]
name = "Another Client"
tax_identification = "DE222222222"
email = "mail@client2.example.com"
reference = "N/A"
due_after_days = 30

[buyer.address]
address_line = "Testallee 3"
city = "Hamburg"
post_code = "20095"
country_code = "DE"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	cfg, err := config.Load(path, "Client Company")
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "19", cfg.VATPercent.String())
	assert.Equal(t, "Hans Muster", cfg.Supplier.Name)
	assert.Equal(t, "DE89370400440532013000", cfg.Supplier.IBAN)
	assert.Equal(t, "Berlin", cfg.Supplier.Address.City)
	assert.Equal(t, "Client Company", cfg.Buyer.Name)
	assert.Equal(t, "mail@client1.example.com", cfg.Buyer.Email)
	assert.Equal(t, 20, cfg.Buyer.DueAfterDays)

	cfg, err = config.Load(path, "Another Client")
	require.NoError(t, err)
	assert.Equal(t, "Another Client", cfg.Buyer.Name)
	assert.Equal(t, "mail@client2.example.com", cfg.Buyer.Email)
	assert.Equal(t, 30, cfg.Buyer.DueAfterDays)
}

func TestLoad_MissingBuyer(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	_, err := config.Load(path, "Wrong Company")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Wrong Company")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nonexistent.toml"), "Client Company")
	assert.Error(t, err)
}

func TestLoad_InvalidSupplier(t *testing.T) {
	// supplier without bank data cannot feed the payment means block
	broken := `currency = "EUR"
vat_percent = 19.0

[supplier]
name = "Hans Muster"
tax_identification = "DE123456789"
email = "hans@muster.example.com"

[supplier.address]
address_line = "Musterstraße 1"
city = "Berlin"
post_code = "10115"
country_code = "DE"

[[buyer]]
name = "Client Company"
tax_identification = "DE111111111"
email = "mail@client1.example.com"
reference = "N/A"
due_after_days = 20

[buyer.address]
address_line = "Beispielweg 2"
city = "München"
post_code = "80331"
country_code = "DE"
`
	path := writeTestConfig(t, broken)

	_, err := config.Load(path, "Client Company")
	var missingErr *model.MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "iban", missingErr.Field)
}

func TestBuyerNames(t *testing.T) {
	path := writeTestConfig(t, testConfig)

	names, err := config.BuyerNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Client Company", "Another Client"}, names)
}
