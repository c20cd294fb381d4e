package repositories

import "github.com/ecoride/rental/pkg/domain/entities"

// BookingRepository provides access to the booking ledger. Bookings are
// never removed; cancellation flips the Active flag on the ledger entry.
// Add assigns the next sequential booking id from a per-instance counter.
type BookingRepository interface {
	// Add appends the booking and assigns its id.
	Add(b *entities.Booking)
	// Get returns the booking or ErrBookingNotFound.
	Get(id string) (*entities.Booking, error)
	// All returns every booking in creation order as a fresh slice.
	All() []*entities.Booking
}
