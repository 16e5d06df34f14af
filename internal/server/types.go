package server

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/xrechnung/internal/model"
)

// GenerateRequest is the request body for the invoice generation endpoint.
// Dates travel as ISO 8601 strings, amounts as JSON numbers.
type GenerateRequest struct {
	Supplier model.Supplier `json:"supplier" binding:"required"`
	Buyer    model.Buyer    `json:"buyer" binding:"required"`
	Bill     BillRequest    `json:"bill" binding:"required"`
	Lines    []LineRequest  `json:"lines" binding:"required"`
}

// BillRequest carries the invoice metadata of a generation request.
type BillRequest struct {
	Number      string  `json:"number" binding:"required"`
	Currency    string  `json:"currency" binding:"required"`
	VATPercent  float64 `json:"vat_percent"`
	IssueDate   string  `json:"issue_date" binding:"required"`
	PeriodStart string  `json:"period_start,omitempty"`
	PeriodEnd   string  `json:"period_end,omitempty"`
}

// LineRequest carries one hourly line item of a generation request.
type LineRequest struct {
	Date       string  `json:"date,omitempty"`
	Name       string  `json:"name" binding:"required"`
	Quantity   float64 `json:"quantity"`
	HourlyRate float64 `json:"hourly_rate"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// toBill converts the request metadata to a domain bill.
func (r BillRequest) toBill() (model.Bill, error) {
	issue, err := time.Parse(model.DateFormat, r.IssueDate)
	if err != nil {
		return model.Bill{}, model.NewInputError("issue_date", r.IssueDate, "must be an ISO 8601 date")
	}

	var period *model.Period
	if r.PeriodStart != "" || r.PeriodEnd != "" {
		start, err := time.Parse(model.DateFormat, r.PeriodStart)
		if err != nil {
			return model.Bill{}, model.NewInputError("period_start", r.PeriodStart, "must be an ISO 8601 date")
		}
		end, err := time.Parse(model.DateFormat, r.PeriodEnd)
		if err != nil {
			return model.Bill{}, model.NewInputError("period_end", r.PeriodEnd, "must be an ISO 8601 date")
		}
		p, err := model.NewPeriod(start, end)
		if err != nil {
			return model.Bill{}, err
		}
		period = &p
	}

	return model.NewBill(r.Number, r.Currency, decimal.NewFromFloat(r.VATPercent), issue, period)
}

// toItem converts a request line to a domain line item.
func (r LineRequest) toItem() (model.HoursItem, error) {
	item := model.HoursItem{
		Name:       r.Name,
		Quantity:   decimal.NewFromFloat(r.Quantity),
		HourlyRate: decimal.NewFromFloat(r.HourlyRate),
	}

	if r.Date != "" {
		date, err := time.Parse(model.DateFormat, r.Date)
		if err != nil {
			return model.HoursItem{}, model.NewInputError("date", r.Date, "must be an ISO 8601 date")
		}
		item.Date = &date
	}

	return item, item.Validate()
}
