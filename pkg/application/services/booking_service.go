package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
)

// BookingService owns the booking ledger. It couples booking lifecycle to
// vehicle availability through the narrow BookingVehicleSource capability:
// creating a booking reserves the vehicle, cancelling releases it.
type BookingService struct {
	bookings repositories.BookingRepository
	vehicles repositories.BookingVehicleSource
	deposit  decimal.Decimal
	clock    Clock
	logger   *log.Logger
}

// NewBookingService creates a booking service using the ambient system
// clock and the given fixed refundable deposit.
func NewBookingService(bookings repositories.BookingRepository, vehicles repositories.BookingVehicleSource, deposit decimal.Decimal, logger *log.Logger) *BookingService {
	return NewBookingServiceWithClock(bookings, vehicles, deposit, logger, time.Now)
}

// NewBookingServiceWithClock creates a booking service with an injected
// clock so the temporal rules are deterministic under test.
func NewBookingServiceWithClock(bookings repositories.BookingRepository, vehicles repositories.BookingVehicleSource, deposit decimal.Decimal, logger *log.Logger, clock Clock) *BookingService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &BookingService{
		bookings: bookings,
		vehicles: vehicles,
		deposit:  deposit,
		clock:    clock,
		logger:   logger,
	}
}

func (s *BookingService) today() time.Time {
	return entities.NormalizeDate(s.clock())
}

// Create books a vehicle for a customer over a date range.
//
// Preconditions are checked in order: the vehicle must exist, must be
// Available, the start date must be at least MinAdvanceBookingDays from
// today (inclusive), and the end date must be after the start date. Any
// failure leaves both the ledger and the catalog untouched; only a fully
// validated booking reserves the vehicle.
func (s *BookingService) Create(customer *entities.Customer, vehicleID string, startDate, endDate time.Time, totalKilometers int64) (*entities.Booking, error) {
	vehicle, err := s.vehicles.Get(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != entities.Available {
		return nil, fmt.Errorf("%w: %s is %s", entities.ErrVehicleUnavailable, vehicleID, vehicle.Status)
	}

	today := s.today()
	startDate = entities.NormalizeDate(startDate)
	endDate = entities.NormalizeDate(endDate)

	if err := validateBookingDates(today, startDate, endDate); err != nil {
		return nil, err
	}

	booking, err := entities.NewBooking(customer, vehicle, today, startDate, endDate, totalKilometers, s.deposit)
	if err != nil {
		return nil, err
	}
	s.bookings.Add(booking)
	s.vehicles.SetAvailability(vehicle.ID, entities.Reserved)

	s.logger.WithFields(log.Fields{
		"booking_id":  booking.ID,
		"customer_id": customer.ID,
		"vehicle_id":  vehicle.ID,
		"start":       startDate.Format("2006-01-02"),
		"end":         endDate.Format("2006-01-02"),
	}).Info("booking created")
	return booking, nil
}

// Cancel deactivates a booking and releases its vehicle.
//
// Cancellation is only allowed within CancellationDeadlineDays of the date
// the booking was made, regardless of how far away the rental start is.
func (s *BookingService) Cancel(bookingID string) error {
	booking, err := s.bookings.Get(bookingID)
	if err != nil {
		return err
	}
	if !booking.Active {
		return fmt.Errorf("%w: %s", entities.ErrBookingAlreadyCancelled, bookingID)
	}
	if !booking.CanBeModified(s.today()) {
		return fmt.Errorf("%w: must cancel within %d days of booking", entities.ErrModificationWindowExpired, entities.CancellationDeadlineDays)
	}

	booking.Active = false
	s.vehicles.SetAvailability(booking.Vehicle.ID, entities.Available)

	s.logger.WithFields(log.Fields{
		"booking_id": bookingID,
		"vehicle_id": booking.Vehicle.ID,
	}).Info("booking cancelled")
	return nil
}

// Update overwrites a booking's dates and kilometre estimate in place.
//
// It is bound by the same post-creation window as cancellation, and the
// new dates must pass the creation rules again, measured against today.
// The vehicle stays Reserved throughout.
func (s *BookingService) Update(bookingID string, newStart, newEnd time.Time, newTotalKilometers int64) error {
	booking, err := s.bookings.Get(bookingID)
	if err != nil {
		return err
	}

	today := s.today()
	if !booking.CanBeModified(today) {
		return fmt.Errorf("%w: must update within %d days of booking", entities.ErrModificationWindowExpired, entities.CancellationDeadlineDays)
	}

	newStart = entities.NormalizeDate(newStart)
	newEnd = entities.NormalizeDate(newEnd)
	if err := validateBookingDates(today, newStart, newEnd); err != nil {
		return err
	}
	if newTotalKilometers < 0 {
		return fmt.Errorf("total kilometers cannot be negative, got %d", newTotalKilometers)
	}

	booking.StartDate = newStart
	booking.EndDate = newEnd
	booking.TotalKilometers = newTotalKilometers

	s.logger.WithFields(log.Fields{
		"booking_id": bookingID,
		"start":      newStart.Format("2006-01-02"),
		"end":        newEnd.Format("2006-01-02"),
	}).Info("booking updated")
	return nil
}

// validateBookingDates applies the creation-time temporal rules: advance
// notice first, then range. Both dates must already be normalized.
func validateBookingDates(today, startDate, endDate time.Time) error {
	if entities.DaysBetween(today, startDate) < entities.MinAdvanceBookingDays {
		return fmt.Errorf("%w: need at least %d days before %s", entities.ErrInsufficientAdvanceNotice, entities.MinAdvanceBookingDays, startDate.Format("2006-01-02"))
	}
	if !endDate.After(startDate) {
		return fmt.Errorf("%w: %s to %s", entities.ErrInvalidDateRange, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	}
	return nil
}

// Find returns the booking with the given id
func (s *BookingService) Find(id string) (*entities.Booking, error) {
	return s.bookings.Get(id)
}

// ListAll returns every booking as a fresh slice
func (s *BookingService) ListAll() []*entities.Booking {
	return s.bookings.All()
}

// ListActive returns the bookings that have not been cancelled
func (s *BookingService) ListActive() []*entities.Booking {
	var out []*entities.Booking
	for _, b := range s.bookings.All() {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}

// FindByCustomerName returns the bookings whose customer name contains
// the given substring, matched case-insensitively.
func (s *BookingService) FindByCustomerName(name string) []*entities.Booking {
	needle := strings.ToLower(name)
	var out []*entities.Booking
	for _, b := range s.bookings.All() {
		if strings.Contains(strings.ToLower(b.Customer.Name), needle) {
			out = append(out, b)
		}
	}
	return out
}

// FindByCustomerID returns the bookings owned by a customer
func (s *BookingService) FindByCustomerID(customerID string) []*entities.Booking {
	var out []*entities.Booking
	for _, b := range s.bookings.All() {
		if b.Customer.ID == customerID {
			out = append(out, b)
		}
	}
	return out
}
