package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoride/rental/pkg/domain/entities"
)

func TestCustomerService_RegisterOrFetch(t *testing.T) {
	f := newFixture(today)

	c, err := f.customers.RegisterOrFetch("990123456V", "Nimal Perera", "0771234567", "nimal@example.com")
	require.NoError(t, err)
	assert.Equal(t, "C0001", c.ID)
	assert.Equal(t, "Nimal Perera", c.Name)
}

func TestCustomerService_RegisterOrFetch_Idempotent(t *testing.T) {
	f := newFixture(today)

	first, err := f.customers.RegisterOrFetch("990123456V", "Nimal Perera", "0771234567", "nimal@example.com")
	require.NoError(t, err)

	// same key in a different case, with different details
	second, err := f.customers.RegisterOrFetch("990123456v", "Someone Else", "0000000000", "other@example.com")
	require.NoError(t, err)

	assert.Same(t, first, second, "repeat registration returns the existing record")
	assert.Equal(t, "Nimal Perera", second.Name, "supplied details are discarded, not merged")
	assert.Equal(t, "0771234567", second.ContactNumber)
	assert.Len(t, f.customers.ListAll(), 1)
}

func TestCustomerService_Update(t *testing.T) {
	f := newFixture(today)
	c, err := f.customers.RegisterOrFetch("990123456V", "Nimal Perera", "0771234567", "nimal@example.com")
	require.NoError(t, err)

	require.NoError(t, f.customers.Update(c.ID, "Nimal B. Perera", "0770000000", "nbp@example.com"))
	assert.Equal(t, "Nimal B. Perera", c.Name)
	assert.Equal(t, "0770000000", c.ContactNumber)
	assert.Equal(t, "nbp@example.com", c.Email)
	assert.Equal(t, "990123456V", c.NicOrPassport, "the business key never changes")

	assert.ErrorIs(t, f.customers.Update("C9999", "x", "y", "z"), entities.ErrCustomerNotFound)
}

func TestCustomerService_Find(t *testing.T) {
	f := newFixture(today)
	c, err := f.customers.RegisterOrFetch("990123456V", "Nimal Perera", "", "")
	require.NoError(t, err)

	byID, err := f.customers.Find(c.ID)
	require.NoError(t, err)
	assert.Same(t, c, byID)

	byKey, err := f.customers.FindByNicOrPassport("990123456v")
	require.NoError(t, err)
	assert.Same(t, c, byKey)

	_, err = f.customers.Find("C9999")
	assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
}
