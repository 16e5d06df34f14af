// Package config loads supplier and buyer master data from a TOML settings
// file. The file carries one supplier and any number of buyers; an invoice is
// always generated for exactly one buyer, selected by name.
package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/rezonia/xrechnung/internal/model"
)

// fileConfig is the raw shape of the settings file.
type fileConfig struct {
	Currency   string         `mapstructure:"currency"`
	VATPercent float64        `mapstructure:"vat_percent"`
	Supplier   model.Supplier `mapstructure:"supplier"`
	Buyers     []model.Buyer  `mapstructure:"buyer"`
}

// Config is the resolved configuration for one invoice: the supplier and the
// single buyer the invoice is addressed to.
type Config struct {
	Currency   string
	VATPercent decimal.Decimal
	Supplier   model.Supplier
	Buyer      model.Buyer
}

// Load reads the settings file and resolves the buyer with the given name.
// Supplier and buyer are validated here so the core only ever sees
// well-formed parties.
func Load(path, buyerName string) (Config, error) {
	fc, err := read(path)
	if err != nil {
		return Config{}, err
	}

	var buyer *model.Buyer
	for i := range fc.Buyers {
		if fc.Buyers[i].Name == buyerName {
			buyer = &fc.Buyers[i]
			break
		}
	}
	if buyer == nil {
		return Config{}, fmt.Errorf("buyer %q not found in %s", buyerName, path)
	}

	cfg := Config{
		Currency:   fc.Currency,
		VATPercent: decimal.NewFromFloat(fc.VATPercent),
		Supplier:   fc.Supplier,
		Buyer:      *buyer,
	}

	if cfg.Currency == "" {
		return Config{}, model.NewMissingFieldError("config", "currency")
	}
	if cfg.VATPercent.IsNegative() {
		return Config{}, model.NewInputError("vat_percent", cfg.VATPercent.String(), "must not be negative")
	}
	if err := cfg.Supplier.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Buyer.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// BuyerNames returns the names of all buyers in the settings file, in file
// order.
func BuyerNames(path string) ([]string, error) {
	fc, err := read(path)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(fc.Buyers))
	for _, b := range fc.Buyers {
		names = append(names, b.Name)
	}
	return names, nil
}

func read(path string) (fileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return fileConfig{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return fc, nil
}
