package office_test

import (
	"testing"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffice(t *testing.T) {
	t.Run("should create office with all attributes", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := office.NewOffice(id, "Central", "Springfield", "12345", "1 Main St")

		require.NoError(t, err)
		assert.Equal(t, id, o.ID())
		assert.Equal(t, "Central", o.Name())
		assert.Equal(t, "Springfield", o.City())
		assert.Equal(t, "12345", o.Postcode())
		assert.Equal(t, "1 Main St", o.Street())
		assert.NoError(t, o.Validate())
	})

	t.Run("should allow empty postcode and street", func(t *testing.T) {
		_, err := office.NewOffice(kernel.NewUUID(), "Central", "Springfield", "", "")
		require.NoError(t, err)
	})

	t.Run("should reject empty name and city", func(t *testing.T) {
		_, err := office.NewOffice(kernel.NewUUID(), "", "", "12345", "1 Main St")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should reject zero identifier", func(t *testing.T) {
		_, err := office.NewOffice(kernel.UUID{}, "Central", "Springfield", "", "")
		require.Error(t, err)
	})
}

func TestOfficeUpdate(t *testing.T) {
	t.Run("should replace descriptive attributes", func(t *testing.T) {
		o, err := office.NewOffice(kernel.NewUUID(), "Central", "Springfield", "12345", "1 Main St")
		require.NoError(t, err)

		err = o.Update("North Branch", "Shelbyville", "", "")

		require.NoError(t, err)
		assert.Equal(t, "North Branch", o.Name())
		assert.Equal(t, "Shelbyville", o.City())
		assert.Empty(t, o.Postcode())
		assert.Empty(t, o.Street())
	})

	t.Run("should keep required attribute rules", func(t *testing.T) {
		o, err := office.NewOffice(kernel.NewUUID(), "Central", "Springfield", "", "")
		require.NoError(t, err)

		err = o.Update("", "Shelbyville", "", "")

		require.Error(t, err)
		assert.Equal(t, "Central", o.Name())
	})
}

func TestOfficeValidate(t *testing.T) {
	var nilOffice *office.Office
	assert.ErrorIs(t, nilOffice.Validate(), office.ErrOfficeIsNotConstructed)
	assert.ErrorIs(t, (&office.Office{}).Validate(), office.ErrOfficeIsNotConstructed)
}
