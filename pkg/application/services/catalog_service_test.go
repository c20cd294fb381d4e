package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoride/rental/pkg/domain/entities"
)

func TestCatalogService_Register(t *testing.T) {
	f := newFixture(today)

	v, err := f.catalog.Register("V001", "Toyota Aqua", compactPetrolCategory())
	require.NoError(t, err)
	assert.Equal(t, entities.Available, v.Status)

	_, err = f.catalog.Register("V001", "Honda Fit", compactPetrolCategory())
	assert.ErrorIs(t, err, entities.ErrDuplicateVehicle)
	assert.Len(t, f.catalog.ListAll(), 1)
}

func TestCatalogService_Update(t *testing.T) {
	f := newFixture(today)
	_, err := f.catalog.Register("V001", "Toyota Aqua", compactPetrolCategory())
	require.NoError(t, err)
	f.catalog.SetAvailability("V001", entities.UnderMaintenance)

	require.NoError(t, f.catalog.Update("V001", "Toyota Prius", hybridCategory()))

	v, err := f.catalog.Find("V001")
	require.NoError(t, err)
	assert.Equal(t, "Toyota Prius", v.Model)
	assert.Equal(t, entities.Hybrid, v.Category.Code)
	assert.Equal(t, entities.UnderMaintenance, v.Status, "detail edits never touch availability")

	assert.ErrorIs(t, f.catalog.Update("V999", "x", hybridCategory()), entities.ErrVehicleNotFound)
}

func TestCatalogService_Update_VisibleThroughBookings(t *testing.T) {
	f := newFixture(today)
	customer := f.registerCustomerAndVehicle(t)
	b, err := f.bookings.Create(customer, "V001", today.AddDate(0, 0, 5), today.AddDate(0, 0, 10), 100)
	require.NoError(t, err)

	require.NoError(t, f.catalog.Update("V001", "Toyota Aqua G", hybridCategory()))

	// the booking holds a reference, not a copy
	assert.Equal(t, "Toyota Aqua G", b.Vehicle.Model)
	assert.Equal(t, entities.Hybrid, b.Vehicle.Category.Code)
}

func TestCatalogService_Remove(t *testing.T) {
	f := newFixture(today)
	_, err := f.catalog.Register("V001", "Toyota Aqua", compactPetrolCategory())
	require.NoError(t, err)

	assert.True(t, f.catalog.Remove("V001"))
	assert.False(t, f.catalog.Remove("V001"))
}

func TestCatalogService_Remove_BookingKeepsSnapshot(t *testing.T) {
	f := newFixture(today)
	customer := f.registerCustomerAndVehicle(t)
	b, err := f.bookings.Create(customer, "V001", today.AddDate(0, 0, 5), today.AddDate(0, 0, 10), 100)
	require.NoError(t, err)

	require.True(t, f.catalog.Remove("V001"))

	// the booking retains its vehicle record after the hard delete
	assert.Equal(t, "V001", b.Vehicle.ID)
	assert.Equal(t, "Toyota Aqua", b.Vehicle.Model)

	// but no new booking can be made against the removed vehicle
	_, err = f.bookings.Create(customer, "V001", today.AddDate(0, 0, 5), today.AddDate(0, 0, 10), 100)
	assert.ErrorIs(t, err, entities.ErrVehicleNotFound)
}

func TestCatalogService_Lists(t *testing.T) {
	f := newFixture(today)
	_, err := f.catalog.Register("V001", "Toyota Aqua", compactPetrolCategory())
	require.NoError(t, err)
	_, err = f.catalog.Register("V002", "Honda Fit", compactPetrolCategory())
	require.NoError(t, err)
	_, err = f.catalog.Register("V003", "Toyota Prius", hybridCategory())
	require.NoError(t, err)
	f.catalog.SetAvailability("V002", entities.Reserved)

	assert.Len(t, f.catalog.ListAll(), 3)

	available := f.catalog.ListAvailable()
	require.Len(t, available, 2)
	assert.Equal(t, "V001", available[0].ID)
	assert.Equal(t, "V003", available[1].ID)

	compacts := f.catalog.ListByCategory(entities.CompactPetrol)
	require.Len(t, compacts, 2)
	assert.Equal(t, "V001", compacts[0].ID)
	assert.Equal(t, "V002", compacts[1].ID)
}
