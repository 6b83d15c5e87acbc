package client_test

import (
	"testing"

	"postal/internal/core/domain/model/client"
	"postal/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("should create client with all attributes", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := client.NewClient(id, "Ada", "Lovelace", "ada@example.com", "+1-555-0100")

		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Ada", c.FirstName())
		assert.Equal(t, "Lovelace", c.LastName())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "+1-555-0100", c.Phone())
		assert.NoError(t, c.Validate())
	})

	t.Run("should allow empty email and phone", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), "Ada", "Lovelace", "", "")
		require.NoError(t, err)
	})

	t.Run("should reject empty names", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), "", "Lovelace", "", "")
		require.Error(t, err)

		_, err = client.NewClient(kernel.NewUUID(), "Ada", "", "", "")
		require.Error(t, err)
	})

	t.Run("should reject zero identifier", func(t *testing.T) {
		_, err := client.NewClient(kernel.UUID{}, "Ada", "Lovelace", "", "")
		require.Error(t, err)
	})
}

func TestClientUpdate(t *testing.T) {
	c, err := client.NewClient(kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "")
	require.NoError(t, err)

	t.Run("should replace attributes", func(t *testing.T) {
		err = c.Update("Grace", "Hopper", "", "+1-555-0101")

		require.NoError(t, err)
		assert.Equal(t, "Grace", c.FirstName())
		assert.Equal(t, "Hopper", c.LastName())
		assert.Empty(t, c.Email())
		assert.Equal(t, "+1-555-0101", c.Phone())
	})

	t.Run("should keep required name rules", func(t *testing.T) {
		err = c.Update("", "Hopper", "", "")

		require.Error(t, err)
		assert.Equal(t, "Grace", c.FirstName())
	})
}

func TestClientValidate(t *testing.T) {
	var nilClient *client.Client
	assert.ErrorIs(t, nilClient.Validate(), client.ErrClientIsNotConstructed)
	assert.ErrorIs(t, (&client.Client{}).Validate(), client.ErrClientIsNotConstructed)
}
