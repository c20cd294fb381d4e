package memory

import (
	"fmt"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
)

// VehicleRepository provides in-memory vehicle storage. Vehicles are held
// by pointer so availability and detail edits are visible through every
// reference, including bookings made before the edit.
type VehicleRepository struct {
	vehicles []*entities.Vehicle
	byID     map[string]*entities.Vehicle
}

// NewVehicleRepository creates a new in-memory vehicle repository
func NewVehicleRepository(expectedVehicles int) *VehicleRepository {
	return &VehicleRepository{
		vehicles: make([]*entities.Vehicle, 0, expectedVehicles),
		byID:     make(map[string]*entities.Vehicle, expectedVehicles),
	}
}

// Verify interface compliance
var _ repositories.VehicleRepository = (*VehicleRepository)(nil)

// Add inserts a vehicle, rejecting duplicate ids
func (r *VehicleRepository) Add(v *entities.Vehicle) error {
	if _, exists := r.byID[v.ID]; exists {
		return fmt.Errorf("%w: %s", entities.ErrDuplicateVehicle, v.ID)
	}
	r.byID[v.ID] = v
	r.vehicles = append(r.vehicles, v)
	return nil
}

// Get returns the vehicle with the given id
func (r *VehicleRepository) Get(id string) (*entities.Vehicle, error) {
	v, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrVehicleNotFound, id)
	}
	return v, nil
}

// Remove deletes the vehicle if present and reports whether it did.
// Removal is idempotent: removing an absent id is not an error.
func (r *VehicleRepository) Remove(id string) bool {
	if _, exists := r.byID[id]; !exists {
		return false
	}
	delete(r.byID, id)
	for i, v := range r.vehicles {
		if v.ID == id {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			break
		}
	}
	return true
}

// All returns every vehicle in registration order as a fresh slice
func (r *VehicleRepository) All() []*entities.Vehicle {
	out := make([]*entities.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out
}

// SetAvailability mutates the vehicle's availability state in place
func (r *VehicleRepository) SetAvailability(id string, status entities.AvailabilityStatus) bool {
	v, exists := r.byID[id]
	if !exists {
		return false
	}
	v.Status = status
	return true
}
