package parcel_test

import (
	"testing"

	"postal/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run("should accept all declared statuses", func(t *testing.T) {
		for _, status := range parcel.AllStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		assert.Error(t, parcel.StatusUnknown.Validate())
		assert.Error(t, parcel.Status(99).Validate())
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "CREATED", parcel.Created.String())
	assert.Equal(t, "IN_TRANSIT", parcel.InTransit.String())
	assert.Equal(t, "DELIVERED", parcel.Delivered.String())
	assert.Equal(t, "UNKNOWN", parcel.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every wire name", func(t *testing.T) {
		for _, status := range parcel.AllStatuses() {
			parsed, err := parcel.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized names", func(t *testing.T) {
		_, err := parcel.StatusFromString("SHIPPED")
		require.Error(t, err)
	})

	t.Run("should reject the unknown name", func(t *testing.T) {
		_, err := parcel.StatusFromString("UNKNOWN")
		require.Error(t, err)
	})
}

func TestStatusSend(t *testing.T) {
	t.Run("should move created to in transit", func(t *testing.T) {
		next, err := parcel.Created.Send()
		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, next)
	})

	t.Run("should keep in transit unchanged on re-dispatch", func(t *testing.T) {
		next, err := parcel.InTransit.Send()
		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, next)
	})

	t.Run("should refuse dispatch from delivered", func(t *testing.T) {
		_, err := parcel.Delivered.Send()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be sent from status DELIVERED")
	})
}
