package repositories

import "github.com/ecoride/rental/pkg/domain/entities"

// VehicleRepository provides access to the vehicle catalog. All returns a
// freshly allocated slice on every call; callers may filter or reorder it
// without affecting the store. The entities themselves are shared, so
// in-place edits are visible to every holder of the reference.
type VehicleRepository interface {
	// Add inserts a vehicle, rejecting duplicate ids with ErrDuplicateVehicle.
	Add(v *entities.Vehicle) error
	// Get returns the vehicle or ErrVehicleNotFound.
	Get(id string) (*entities.Vehicle, error)
	// Remove deletes the vehicle if present and reports whether it did.
	Remove(id string) bool
	// All returns every vehicle in registration order.
	All() []*entities.Vehicle

	AvailabilityMutator
}

// AvailabilityMutator is the narrow capability needed to flip a vehicle's
// availability state without seeing the rest of the catalog.
type AvailabilityMutator interface {
	// SetAvailability mutates the vehicle's state in place and reports
	// whether the vehicle was found.
	SetAvailability(id string, status entities.AvailabilityStatus) bool
}

// BookingVehicleSource is the slice of the catalog the booking ledger
// depends on: lookups plus the availability switch. Keeping it narrow
// lets ledger tests run against a fake instead of a full catalog.
type BookingVehicleSource interface {
	Get(id string) (*entities.Vehicle, error)
	AvailabilityMutator
}
