package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoride/rental/pkg/domain/entities"
)

func newTestBooking(t *testing.T) *entities.Booking {
	t.Helper()
	b, err := entities.NewBooking(
		newTestCustomer(t, "990123456V"),
		newTestVehicle(t, "V001"),
		entities.Date(2026, 3, 1),
		entities.Date(2026, 3, 10),
		entities.Date(2026, 3, 15),
		500,
		entities.DefaultRefundableDeposit,
	)
	require.NoError(t, err)
	return b
}

func TestBookingRepository_Add_AssignsSequentialIDs(t *testing.T) {
	repo := NewBookingRepository(4)

	first := newTestBooking(t)
	second := newTestBooking(t)
	repo.Add(first)
	repo.Add(second)

	assert.Equal(t, "B0001", first.ID)
	assert.Equal(t, "B0002", second.ID)
}

func TestBookingRepository_Get(t *testing.T) {
	repo := NewBookingRepository(4)
	b := newTestBooking(t)
	repo.Add(b)

	got, err := repo.Get(b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got, "the ledger hands out the stored entry, not a copy")

	_, err = repo.Get("B9999")
	assert.ErrorIs(t, err, entities.ErrBookingNotFound)
}

func TestBookingRepository_All_DefensiveCopy(t *testing.T) {
	repo := NewBookingRepository(4)
	repo.Add(newTestBooking(t))

	list := repo.All()
	list[0] = nil

	fresh := repo.All()
	require.Len(t, fresh, 1)
	assert.NotNil(t, fresh[0])
}
