package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// MinAdvanceBookingDays is the minimum number of days between today and
	// a booking's start date.
	MinAdvanceBookingDays = 3

	// CancellationDeadlineDays is the number of days after a booking is
	// made during which it may still be cancelled or updated.
	CancellationDeadlineDays = 2
)

// DefaultRefundableDeposit is the fixed deposit captured on each booking
// and netted against the final invoice amount.
var DefaultRefundableDeposit = decimal.NewFromInt(5000)

// Booking represents a reservation of one vehicle for a date range.
// Customer and Vehicle are shared references into their stores, so later
// edits to those records are visible through the booking.
type Booking struct {
	ID              string
	Customer        *Customer
	Vehicle         *Vehicle
	BookingDate     time.Time
	StartDate       time.Time
	EndDate         time.Time
	TotalKilometers int64
	DepositAmount   decimal.Decimal
	Active          bool
}

// NewBooking creates a validated Active booking without a store-assigned
// id. Dates are normalized to midnight UTC; temporal business rules are
// enforced by the booking service, not here.
func NewBooking(customer *Customer, vehicle *Vehicle, bookingDate, startDate, endDate time.Time, totalKilometers int64, deposit decimal.Decimal) (*Booking, error) {
	if customer == nil {
		return nil, fmt.Errorf("booking customer cannot be nil")
	}
	if vehicle == nil {
		return nil, fmt.Errorf("booking vehicle cannot be nil")
	}
	if totalKilometers < 0 {
		return nil, fmt.Errorf("total kilometers cannot be negative, got %d", totalKilometers)
	}

	return &Booking{
		Customer:        customer,
		Vehicle:         vehicle,
		BookingDate:     NormalizeDate(bookingDate),
		StartDate:       NormalizeDate(startDate),
		EndDate:         NormalizeDate(endDate),
		TotalKilometers: totalKilometers,
		DepositAmount:   deposit,
		Active:          true,
	}, nil
}

// RentalDays returns the whole-day rental duration, end date exclusive
func (b *Booking) RentalDays() int {
	return DaysBetween(b.StartDate, b.EndDate)
}

// CanBeModified reports whether the booking may still be cancelled or
// updated as of today. The window is measured from the date the booking
// was made, not from the rental start date: a booking made far in advance
// still firms up CancellationDeadlineDays after creation.
func (b *Booking) CanBeModified(today time.Time) bool {
	return b.Active && DaysBetween(b.BookingDate, NormalizeDate(today)) <= CancellationDeadlineDays
}

// Date builds a date value at midnight UTC
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NormalizeDate truncates t to midnight UTC so day arithmetic is exact
func NormalizeDate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// DaysBetween returns the whole number of days from a to b. Both values
// are normalized first; the result is negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(NormalizeDate(b).Sub(NormalizeDate(a)) / (24 * time.Hour))
}
