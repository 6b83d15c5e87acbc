package commands_test

import (
	"testing"

	"postal/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOfficeCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOfficeCommand("Central", "Springfield", "12345", "1 Main St")

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "Central", cmd.Name())
	assert.Equal(t, "Springfield", cmd.City())
	assert.Equal(t, "12345", cmd.Postcode())
	assert.Equal(t, "1 Main St", cmd.Street())
}

func TestNewCreateOfficeCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateOfficeCommand("", "Springfield", "", "")

	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestNewCreateOfficeCommand_EmptyCity(t *testing.T) {
	_, err := commands.NewCreateOfficeCommand("Central", "", "", "")

	assert.ErrorIs(t, err, commands.ErrCityIsRequired)
}

func TestCreateOfficeCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.CreateOfficeCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOfficeCommandIsNotConstructed)
}
