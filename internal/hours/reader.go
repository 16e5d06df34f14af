// Package hours reads billable line items from a delimited file with the
// columns date, name, quantity, hourly_rate. Malformed rows are reported with
// their row numbers; the generation core never sees unparsed data.
package hours

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rezonia/xrechnung/internal/model"
	"github.com/rezonia/xrechnung/internal/money"
)

// ReadFile reads line items from a CSV file.
func ReadFile(path string) ([]model.HoursItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open hours file: %w", err)
	}
	defer f.Close()

	items, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Read parses CSV line items from r. The first record is the header; column
// order is free, the date column is optional per row.
func Read(r io.Reader) ([]model.HoursItem, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("hours file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var items []model.HoursItem
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		item, err := parseRecord(cols, record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// columns holds the field positions resolved from the header.
type columns struct {
	date     int // -1 when the file has no date column
	name     int
	quantity int
	rate     int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{date: -1, name: -1, quantity: -1, rate: -1}
	for i, h := range header {
		switch h {
		case "date":
			cols.date = i
		case "name":
			cols.name = i
		case "quantity":
			cols.quantity = i
		case "hourly_rate":
			cols.rate = i
		}
	}

	for field, idx := range map[string]int{"name": cols.name, "quantity": cols.quantity, "hourly_rate": cols.rate} {
		if idx == -1 {
			return columns{}, fmt.Errorf("missing column %q in header", field)
		}
	}
	return cols, nil
}

func parseRecord(cols columns, record []string) (model.HoursItem, error) {
	item := model.HoursItem{Name: record[cols.name]}

	quantity, err := money.FromString(record[cols.quantity])
	if err != nil {
		return model.HoursItem{}, fmt.Errorf("invalid quantity %q: %w", record[cols.quantity], err)
	}
	item.Quantity = quantity

	rate, err := money.FromString(record[cols.rate])
	if err != nil {
		return model.HoursItem{}, fmt.Errorf("invalid hourly_rate %q: %w", record[cols.rate], err)
	}
	item.HourlyRate = rate

	if cols.date >= 0 && record[cols.date] != "" {
		date, err := time.Parse(model.DateFormat, record[cols.date])
		if err != nil {
			return model.HoursItem{}, fmt.Errorf("invalid date %q: %w", record[cols.date], err)
		}
		item.Date = &date
	}

	if err := item.Validate(); err != nil {
		return model.HoursItem{}, err
	}
	return item, nil
}
