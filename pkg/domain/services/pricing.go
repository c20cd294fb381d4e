package services

import (
	"github.com/shopspring/decimal"

	"github.com/ecoride/rental/pkg/domain/entities"
)

// PricingCalculator derives the monetary figures of an invoice from a
// booking. It is a pure computation over the booking's vehicle tier, date
// range, kilometres and deposit; it holds no store state.
type PricingCalculator struct {
	longRentalDays     int
	longRentalDiscount decimal.Decimal
}

// NewPricingCalculator creates a calculator with the standard long-rental
// discount: 10% off the base price for rentals of 7 days or more.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{
		longRentalDays:     7,
		longRentalDiscount: decimal.New(1, -1),
	}
}

// Price computes the full pricing breakdown for a booking.
//
// The deposit is netted last, so FinalAmount goes negative when the
// deposit exceeds the computed total. That is a valid outcome (the
// customer is owed a refund) and is deliberately not floored at zero.
func (c *PricingCalculator) Price(b *entities.Booking) entities.Pricing {
	category := b.Vehicle.Category
	rentalDays := int64(b.RentalDays())

	basePrice := category.DailyRate.Mul(decimal.NewFromInt(rentalDays))

	includedKm := category.FreeKmPerDay * rentalDays
	extraKm := b.TotalKilometers - includedKm
	if extraKm < 0 {
		extraKm = 0
	}
	extraKmCharge := category.ExtraKmRate.Mul(decimal.NewFromInt(extraKm))

	discount := decimal.Zero
	if int(rentalDays) >= c.longRentalDays {
		discount = basePrice.Mul(c.longRentalDiscount)
	}

	subtotal := basePrice.Sub(discount).Add(extraKmCharge)
	tax := subtotal.Mul(category.TaxRate)
	totalBeforeDeposit := subtotal.Add(tax)

	return entities.Pricing{
		BasePrice:          basePrice,
		ExtraKmCharge:      extraKmCharge,
		DiscountAmount:     discount,
		TaxAmount:          tax,
		TotalBeforeDeposit: totalBeforeDeposit,
		DepositDeduction:   b.DepositAmount,
		FinalAmount:        totalBeforeDeposit.Sub(b.DepositAmount),
	}
}
