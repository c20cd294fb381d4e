package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoride/rental/pkg/domain/entities"
	"github.com/ecoride/rental/pkg/domain/repositories"
	"github.com/ecoride/rental/pkg/infrastructure/repositories/memory"
)

// fakeVehicleSource stands in for the catalog and records every
// availability write the ledger makes.
type fakeVehicleSource struct {
	vehicle  *entities.Vehicle
	setCalls []entities.AvailabilityStatus
}

var _ repositories.BookingVehicleSource = (*fakeVehicleSource)(nil)

func (f *fakeVehicleSource) Get(id string) (*entities.Vehicle, error) {
	if f.vehicle != nil && f.vehicle.ID == id {
		return f.vehicle, nil
	}
	return nil, fmt.Errorf("%w: %s", entities.ErrVehicleNotFound, id)
}

func (f *fakeVehicleSource) SetAvailability(id string, status entities.AvailabilityStatus) bool {
	if f.vehicle == nil || f.vehicle.ID != id {
		return false
	}
	f.setCalls = append(f.setCalls, status)
	f.vehicle.Status = status
	return true
}

func TestBookingService_WorksAgainstFakeSource(t *testing.T) {
	vehicle, err := entities.NewVehicle("V001", "Toyota Aqua", compactPetrolCategory())
	require.NoError(t, err)
	source := &fakeVehicleSource{vehicle: vehicle}
	customer, err := entities.NewCustomer("990123456V", "Nimal Perera", "", "")
	require.NoError(t, err)

	clock := &testClock{now: today}
	svc := NewBookingServiceWithClock(memory.NewBookingRepository(4), source, entities.DefaultRefundableDeposit, testLogger(), clock.Now)

	b, err := svc.Create(customer, "V001", today.AddDate(0, 0, 5), today.AddDate(0, 0, 10), 100)
	require.NoError(t, err)
	assert.Equal(t, []entities.AvailabilityStatus{entities.Reserved}, source.setCalls)

	require.NoError(t, svc.Cancel(b.ID))
	assert.Equal(t, []entities.AvailabilityStatus{entities.Reserved, entities.Available}, source.setCalls)
}

func TestBookingService_FailedCreateWritesNoAvailability(t *testing.T) {
	vehicle, err := entities.NewVehicle("V001", "Toyota Aqua", compactPetrolCategory())
	require.NoError(t, err)
	source := &fakeVehicleSource{vehicle: vehicle}
	customer, err := entities.NewCustomer("990123456V", "Nimal Perera", "", "")
	require.NoError(t, err)

	clock := &testClock{now: today}
	svc := NewBookingServiceWithClock(memory.NewBookingRepository(4), source, entities.DefaultRefundableDeposit, testLogger(), clock.Now)

	// fails the advance-notice rule after the vehicle lookup succeeded
	_, err = svc.Create(customer, "V001", today.AddDate(0, 0, 1), today.AddDate(0, 0, 10), 100)
	require.ErrorIs(t, err, entities.ErrInsufficientAdvanceNotice)

	assert.Empty(t, source.setCalls, "a rejected booking never touches availability")
}
