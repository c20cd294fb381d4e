package repositories

import "github.com/ecoride/rental/pkg/domain/entities"

// InvoiceRepository provides access to generated invoices. Invoices are
// immutable once stored; there is at most one per booking. Add assigns
// the next sequential invoice id from a per-instance counter.
type InvoiceRepository interface {
	// Add stores the invoice and assigns its id.
	Add(inv *entities.Invoice)
	// Get returns the invoice or ErrInvoiceNotFound.
	Get(id string) (*entities.Invoice, error)
	// GetByBookingID returns the invoice generated for a booking, or
	// ErrInvoiceNotFound if none exists yet.
	GetByBookingID(bookingID string) (*entities.Invoice, error)
	// All returns every invoice in generation order as a fresh slice.
	All() []*entities.Invoice
}
