package services

import (
	log "github.com/sirupsen/logrus"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
)

// CatalogService manages the rental fleet: registration, detail edits,
// removal, availability edits and the read views over the catalog.
type CatalogService struct {
	vehicles repositories.VehicleRepository
	logger   *log.Logger
}

// NewCatalogService creates a catalog service over the given store. A nil
// logger falls back to the logrus standard logger.
func NewCatalogService(vehicles repositories.VehicleRepository, logger *log.Logger) *CatalogService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &CatalogService{vehicles: vehicles, logger: logger}
}

// Register adds a new vehicle in the Available state. Registration fails
// with ErrDuplicateVehicle when the id is already taken.
func (s *CatalogService) Register(id, model string, category entities.Category) (*entities.Vehicle, error) {
	v, err := entities.NewVehicle(id, model, category)
	if err != nil {
		return nil, err
	}
	if err := s.vehicles.Add(v); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{
		"vehicle_id": v.ID,
		"model":      v.Model,
		"category":   v.Category.Code,
	}).Info("vehicle registered")
	return v, nil
}

// Update overwrites the vehicle's model and category in place. The
// availability state is untouched.
func (s *CatalogService) Update(id, model string, category entities.Category) error {
	v, err := s.vehicles.Get(id)
	if err != nil {
		return err
	}
	v.Model = model
	v.Category = category
	s.logger.WithFields(log.Fields{
		"vehicle_id": id,
		"model":      model,
		"category":   category.Code,
	}).Info("vehicle updated")
	return nil
}

// Remove hard-deletes the vehicle from the catalog and reports whether it
// was present. Bookings keep their reference to the removed record.
func (s *CatalogService) Remove(id string) bool {
	removed := s.vehicles.Remove(id)
	if removed {
		s.logger.WithField("vehicle_id", id).Info("vehicle removed")
	}
	return removed
}

// SetAvailability edits the vehicle's availability state directly and
// reports whether the vehicle was found.
func (s *CatalogService) SetAvailability(id string, status entities.AvailabilityStatus) bool {
	found := s.vehicles.SetAvailability(id, status)
	if found {
		s.logger.WithFields(log.Fields{
			"vehicle_id": id,
			"status":     status.String(),
		}).Info("vehicle availability changed")
	}
	return found
}

// Find returns the vehicle with the given id
func (s *CatalogService) Find(id string) (*entities.Vehicle, error) {
	return s.vehicles.Get(id)
}

// ListAll returns every vehicle as a fresh slice
func (s *CatalogService) ListAll() []*entities.Vehicle {
	return s.vehicles.All()
}

// ListAvailable returns the vehicles currently in the Available state
func (s *CatalogService) ListAvailable() []*entities.Vehicle {
	var out []*entities.Vehicle
	for _, v := range s.vehicles.All() {
		if v.Status == entities.Available {
			out = append(out, v)
		}
	}
	return out
}

// ListByCategory returns the vehicles of one pricing tier
func (s *CatalogService) ListByCategory(code entities.CategoryCode) []*entities.Vehicle {
	var out []*entities.Vehicle
	for _, v := range s.vehicles.All() {
		if v.Category.Code == code {
			out = append(out, v)
		}
	}
	return out
}
