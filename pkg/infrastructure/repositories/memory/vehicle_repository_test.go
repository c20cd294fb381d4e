package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoride/rental/pkg/domain/entities"
)

func newTestVehicle(t *testing.T, id string) *entities.Vehicle {
	t.Helper()
	v, err := entities.NewVehicle(id, "Toyota Aqua", entities.Category{
		Code:         entities.CompactPetrol,
		DisplayName:  "Compact Petrol Car",
		DailyRate:    decimal.NewFromInt(5000),
		FreeKmPerDay: 100,
		ExtraKmRate:  decimal.NewFromInt(50),
		TaxRate:      decimal.NewFromFloat(0.10),
	})
	require.NoError(t, err)
	return v
}

func TestVehicleRepository_Add_Duplicate(t *testing.T) {
	repo := NewVehicleRepository(4)

	require.NoError(t, repo.Add(newTestVehicle(t, "V001")))

	err := repo.Add(newTestVehicle(t, "V001"))
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrDuplicateVehicle)

	// the catalog still holds exactly one entry for the id
	assert.Len(t, repo.All(), 1)
}

func TestVehicleRepository_Get_NotFound(t *testing.T) {
	repo := NewVehicleRepository(4)

	_, err := repo.Get("V999")
	assert.ErrorIs(t, err, entities.ErrVehicleNotFound)
}

func TestVehicleRepository_Remove_Idempotent(t *testing.T) {
	repo := NewVehicleRepository(4)
	require.NoError(t, repo.Add(newTestVehicle(t, "V001")))

	assert.True(t, repo.Remove("V001"))
	assert.False(t, repo.Remove("V001"), "second removal reports absence, not an error")
	assert.Empty(t, repo.All())
}

func TestVehicleRepository_All_DefensiveCopy(t *testing.T) {
	repo := NewVehicleRepository(4)
	require.NoError(t, repo.Add(newTestVehicle(t, "V001")))
	require.NoError(t, repo.Add(newTestVehicle(t, "V002")))

	list := repo.All()
	list[0] = nil

	// mutating the returned slice leaves the store intact
	fresh := repo.All()
	require.Len(t, fresh, 2)
	assert.Equal(t, "V001", fresh[0].ID)
	assert.Equal(t, "V002", fresh[1].ID)
}

func TestVehicleRepository_SetAvailability(t *testing.T) {
	repo := NewVehicleRepository(4)
	require.NoError(t, repo.Add(newTestVehicle(t, "V001")))

	assert.True(t, repo.SetAvailability("V001", entities.Reserved))

	v, err := repo.Get("V001")
	require.NoError(t, err)
	assert.Equal(t, entities.Reserved, v.Status)

	assert.False(t, repo.SetAvailability("V999", entities.Reserved))
}

func TestVehicleRepository_SharedReferences(t *testing.T) {
	repo := NewVehicleRepository(4)
	require.NoError(t, repo.Add(newTestVehicle(t, "V001")))

	held, err := repo.Get("V001")
	require.NoError(t, err)

	// an in-place edit is visible through every reference
	repo.SetAvailability("V001", entities.UnderMaintenance)
	assert.Equal(t, entities.UnderMaintenance, held.Status)
}
