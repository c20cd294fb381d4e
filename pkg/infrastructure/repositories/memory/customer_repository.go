package memory

import (
	"fmt"
	"strings"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
)

// CustomerRepository provides in-memory customer storage keyed by the
// store-assigned id and, case-insensitively, by NIC/passport.
type CustomerRepository struct {
	customers []*entities.Customer
	byID      map[string]*entities.Customer
	byNic     map[string]*entities.Customer
	counter   int
}

// NewCustomerRepository creates a new in-memory customer repository. The
// id counter belongs to this instance; retired values are never reused.
func NewCustomerRepository(expectedCustomers int) *CustomerRepository {
	return &CustomerRepository{
		customers: make([]*entities.Customer, 0, expectedCustomers),
		byID:      make(map[string]*entities.Customer, expectedCustomers),
		byNic:     make(map[string]*entities.Customer, expectedCustomers),
		counter:   1,
	}
}

// Verify interface compliance
var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// Add inserts the customer and assigns the next sequential id (C0001, ...)
func (r *CustomerRepository) Add(c *entities.Customer) {
	c.ID = fmt.Sprintf("C%04d", r.counter)
	r.counter++
	r.customers = append(r.customers, c)
	r.byID[c.ID] = c
	r.byNic[strings.ToLower(c.NicOrPassport)] = c
}

// Get returns the customer with the given store-assigned id
func (r *CustomerRepository) Get(id string) (*entities.Customer, error) {
	c, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrCustomerNotFound, id)
	}
	return c, nil
}

// GetByNicOrPassport matches the business key case-insensitively
func (r *CustomerRepository) GetByNicOrPassport(key string) (*entities.Customer, error) {
	c, exists := r.byNic[strings.ToLower(key)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrCustomerNotFound, key)
	}
	return c, nil
}

// All returns every customer in registration order as a fresh slice
func (r *CustomerRepository) All() []*entities.Customer {
	out := make([]*entities.Customer, len(r.customers))
	copy(out, r.customers)
	return out
}
