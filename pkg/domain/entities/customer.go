package entities

import "fmt"

// Customer represents a registered rental customer. ID is assigned by the
// customer store; NicOrPassport is the business key the customer is known
// by (matched case-insensitively).
type Customer struct {
	ID            string
	NicOrPassport string
	Name          string
	ContactNumber string
	Email         string
}

// NewCustomer creates a validated Customer without a store-assigned id
func NewCustomer(nicOrPassport, name, contactNumber, email string) (*Customer, error) {
	if nicOrPassport == "" {
		return nil, fmt.Errorf("NIC/passport cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("customer name cannot be empty")
	}

	return &Customer{
		NicOrPassport: nicOrPassport,
		Name:          name,
		ContactNumber: contactNumber,
		Email:         email,
	}, nil
}
