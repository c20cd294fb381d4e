package services

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
)

// CustomerService manages the customer directory, keyed by the
// NIC/passport business key.
type CustomerService struct {
	customers repositories.CustomerRepository
	logger    *log.Logger
}

// NewCustomerService creates a customer service over the given store. A
// nil logger falls back to the logrus standard logger.
func NewCustomerService(customers repositories.CustomerRepository, logger *log.Logger) *CustomerService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &CustomerService{customers: customers, logger: logger}
}

// RegisterOrFetch returns the customer registered under the NIC/passport
// key, creating the record on first sight. The match is case-insensitive.
// When the customer already exists the supplied name, contact and email
// are discarded, not merged: this is a fetch-or-create, not an upsert.
func (s *CustomerService) RegisterOrFetch(nicOrPassport, name, contactNumber, email string) (*entities.Customer, error) {
	existing, err := s.customers.GetByNicOrPassport(nicOrPassport)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, entities.ErrCustomerNotFound) {
		return nil, err
	}

	c, err := entities.NewCustomer(nicOrPassport, name, contactNumber, email)
	if err != nil {
		return nil, err
	}
	s.customers.Add(c)
	s.logger.WithFields(log.Fields{
		"customer_id": c.ID,
		"name":        c.Name,
	}).Info("customer registered")
	return c, nil
}

// Find returns the customer with the given store-assigned id
func (s *CustomerService) Find(id string) (*entities.Customer, error) {
	return s.customers.Get(id)
}

// FindByNicOrPassport returns the customer registered under the business
// key, matched case-insensitively.
func (s *CustomerService) FindByNicOrPassport(key string) (*entities.Customer, error) {
	return s.customers.GetByNicOrPassport(key)
}

// ListAll returns every customer as a fresh slice
func (s *CustomerService) ListAll() []*entities.Customer {
	return s.customers.All()
}

// Update overwrites the customer's mutable fields (name, contact number,
// email) in place. The business key and id never change.
func (s *CustomerService) Update(id, name, contactNumber, email string) error {
	c, err := s.customers.Get(id)
	if err != nil {
		return err
	}
	c.Name = name
	c.ContactNumber = contactNumber
	c.Email = email
	s.logger.WithField("customer_id", id).Info("customer updated")
	return nil
}
