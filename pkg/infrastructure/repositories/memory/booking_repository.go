package memory

import (
	"fmt"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
)

// BookingRepository provides in-memory booking storage. Entries are
// append-only; cancellation is a flag flip on the stored booking.
type BookingRepository struct {
	bookings []*entities.Booking
	byID     map[string]*entities.Booking
	counter  int
}

// NewBookingRepository creates a new in-memory booking repository
func NewBookingRepository(expectedBookings int) *BookingRepository {
	return &BookingRepository{
		bookings: make([]*entities.Booking, 0, expectedBookings),
		byID:     make(map[string]*entities.Booking, expectedBookings),
		counter:  1,
	}
}

// Verify interface compliance
var _ repositories.BookingRepository = (*BookingRepository)(nil)

// Add appends the booking and assigns the next sequential id (B0001, ...)
func (r *BookingRepository) Add(b *entities.Booking) {
	b.ID = fmt.Sprintf("B%04d", r.counter)
	r.counter++
	r.bookings = append(r.bookings, b)
	r.byID[b.ID] = b
}

// Get returns the booking with the given id
func (r *BookingRepository) Get(id string) (*entities.Booking, error) {
	b, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entities.ErrBookingNotFound, id)
	}
	return b, nil
}

// All returns every booking in creation order as a fresh slice
func (r *BookingRepository) All() []*entities.Booking {
	out := make([]*entities.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}
