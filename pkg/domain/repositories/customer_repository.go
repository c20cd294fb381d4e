package repositories

import "github.com/ecoride/rental/pkg/domain/entities"

// CustomerRepository provides access to registered customers. Add assigns
// the next sequential customer id; the counter belongs to the store
// instance, so independent stores number independently.
type CustomerRepository interface {
	// Add inserts the customer and assigns its id.
	Add(c *entities.Customer)
	// Get returns the customer or ErrCustomerNotFound.
	Get(id string) (*entities.Customer, error)
	// GetByNicOrPassport matches the business key case-insensitively and
	// returns ErrCustomerNotFound on a miss.
	GetByNicOrPassport(key string) (*entities.Customer, error)
	// All returns every customer in registration order as a fresh slice.
	All() []*entities.Customer
}
