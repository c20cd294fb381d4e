package memory

import (
	"fmt"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
)

// InvoiceRepository provides in-memory invoice storage with a secondary
// index by booking id, which backs the generate-once contract.
type InvoiceRepository struct {
	invoices  []*entities.Invoice
	byID      map[string]*entities.Invoice
	byBooking map[string]*entities.Invoice
	counter   int
}

// NewInvoiceRepository creates a new in-memory invoice repository
func NewInvoiceRepository(expectedInvoices int) *InvoiceRepository {
	return &InvoiceRepository{
		invoices:  make([]*entities.Invoice, 0, expectedInvoices),
		byID:      make(map[string]*entities.Invoice, expectedInvoices),
		byBooking: make(map[string]*entities.Invoice, expectedInvoices),
		counter:   1,
	}
}

// Verify interface compliance
var _ repositories.InvoiceRepository = (*InvoiceRepository)(nil)

// Add stores the invoice and assigns the next sequential id (INV0001, ...)
func (r *InvoiceRepository) Add(inv *entities.Invoice) {
	inv.ID = fmt.Sprintf("INV%04d", r.counter)
	r.counter++
	r.invoices = append(r.invoices, inv)
	r.byID[inv.ID] = inv
	r.byBooking[inv.Booking.ID] = inv
}

// Get returns the invoice with the given id
func (r *InvoiceRepository) Get(id string) (*entities.Invoice, error) {
	inv, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrInvoiceNotFound, id)
	}
	return inv, nil
}

// GetByBookingID returns the invoice generated for a booking
func (r *InvoiceRepository) GetByBookingID(bookingID string) (*entities.Invoice, error) {
	inv, exists := r.byBooking[bookingID]
	if !exists {
		return nil, fmt.Errorf("%w: no invoice for booking %s", entities.ErrInvoiceNotFound, bookingID)
	}
	return inv, nil
}

// All returns every invoice in generation order as a fresh slice
func (r *InvoiceRepository) All() []*entities.Invoice {
	out := make([]*entities.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out
}
