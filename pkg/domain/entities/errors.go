package entities

import "errors"

// Domain errors for the rental engine. Every operation failure is one of
// these kinds; callers match with errors.Is.
var (
	// ErrDuplicateVehicle indicates a registration with an already-used vehicle id.
	ErrDuplicateVehicle = errors.New("vehicle id already registered")

	// ErrVehicleNotFound indicates a lookup miss in the vehicle catalog.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleUnavailable indicates a booking attempt against a vehicle
	// that is not in the Available state.
	ErrVehicleUnavailable = errors.New("vehicle is not available for booking")

	// ErrCustomerNotFound indicates a lookup miss in the customer directory.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrBookingNotFound indicates a lookup miss in the booking ledger.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvoiceNotFound indicates a lookup miss in the invoice store.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvalidDateRange indicates a rental end date on or before its start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrInsufficientAdvanceNotice indicates a rental start date closer to
	// today than the minimum advance-booking window.
	ErrInsufficientAdvanceNotice = errors.New("insufficient advance notice for booking start date")

	// ErrModificationWindowExpired indicates a cancel or update attempted
	// after the post-creation grace window, or against a cancelled booking.
	ErrModificationWindowExpired = errors.New("booking modification deadline has passed")

	// ErrBookingAlreadyCancelled indicates a cancel of an already-cancelled booking.
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
)
