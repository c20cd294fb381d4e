package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Pricing holds every intermediate monetary figure of a priced booking.
// All figures are kept, not just the final amount, so invoices can be
// rendered and audited without recomputation.
type Pricing struct {
	BasePrice          decimal.Decimal
	ExtraKmCharge      decimal.Decimal
	DiscountAmount     decimal.Decimal
	TaxAmount          decimal.Decimal
	TotalBeforeDeposit decimal.Decimal
	DepositDeduction   decimal.Decimal
	FinalAmount        decimal.Decimal
}

// Invoice is an immutable priced snapshot of a booking. It is generated at
// most once per booking and never recomputed or edited afterwards.
type Invoice struct {
	ID          string
	Booking     *Booking
	GeneratedAt time.Time
	Pricing
}

// NewInvoice creates a validated Invoice without a store-assigned id
func NewInvoice(booking *Booking, generatedAt time.Time, pricing Pricing) (*Invoice, error) {
	if booking == nil {
		return nil, fmt.Errorf("invoice booking cannot be nil")
	}

	return &Invoice{
		Booking:     booking,
		GeneratedAt: generatedAt,
		Pricing:     pricing,
	}, nil
}
