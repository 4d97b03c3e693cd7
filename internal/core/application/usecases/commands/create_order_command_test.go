package commands_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	sender := kernel.NewUUID()
	receiver := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "spare parts", 2.5, sender, receiver, "pending")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "spare parts", cmd.Description())
	assert.InDelta(t, 2.5, cmd.Weight(), 0.001)
	assert.Equal(t, sender, cmd.Sender())
	assert.Equal(t, receiver, cmd.Receiver())
	assert.Equal(t, "pending", cmd.Status().String())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "spare parts", 2.5, kernel.NewUUID(), kernel.NewUUID(), "pending")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyDescription(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", 2.5, kernel.NewUUID(), kernel.NewUUID(), "pending")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDescriptionIsRequired)
}

func TestNewCreateOrderCommand_InvalidWeight(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "spare parts", 0, kernel.NewUUID(), kernel.NewUUID(), "pending")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWeightIsInvalid)
}

func TestNewCreateOrderCommand_MissingParty(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "spare parts", 2.5, kernel.UUID{}, kernel.NewUUID(), "pending")
	require.Error(t, err)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), "spare parts", 2.5, kernel.NewUUID(), kernel.UUID{}, "pending")
	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyStatus(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "spare parts", 2.5, kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
}
