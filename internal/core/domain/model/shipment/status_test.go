package shipment_test

import (
	"testing"

	"courier/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("valid_values", func(t *testing.T) {
		for _, s := range []string{
			"pending", "picked_up", "in_transit", "out_for_delivery", "delivered", "cancelled",
		} {
			status, err := shipment.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("invalid_value", func(t *testing.T) {
		_, err := shipment.StatusFromString("dispatched")
		require.Error(t, err)
	})
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Out for Delivery", shipment.StatusOutForDelivery.Label())
	assert.Equal(t, "Picked Up", shipment.StatusPickedUp.Label())
	assert.Equal(t, "Unknown", shipment.Status("bogus").Label())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.StatusDelivered.IsTerminal())
	assert.True(t, shipment.StatusCancelled.IsTerminal())
	assert.False(t, shipment.StatusPending.IsTerminal())
	assert.False(t, shipment.StatusOutForDelivery.IsTerminal())
}

// Transitions are enforced: only strictly forward moves along the chain,
// plus cancellation from any non-terminal state.
func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("forward_steps_allowed", func(t *testing.T) {
		require.NoError(t, shipment.StatusPending.CanTransitionTo(shipment.StatusPickedUp))
		require.NoError(t, shipment.StatusPickedUp.CanTransitionTo(shipment.StatusInTransit))
		require.NoError(t, shipment.StatusInTransit.CanTransitionTo(shipment.StatusOutForDelivery))
		require.NoError(t, shipment.StatusOutForDelivery.CanTransitionTo(shipment.StatusDelivered))
	})

	t.Run("forward_jumps_allowed", func(t *testing.T) {
		require.NoError(t, shipment.StatusPending.CanTransitionTo(shipment.StatusInTransit))
		require.NoError(t, shipment.StatusPickedUp.CanTransitionTo(shipment.StatusDelivered))
	})

	t.Run("cancel_from_any_non_terminal", func(t *testing.T) {
		for _, s := range []shipment.Status{
			shipment.StatusPending,
			shipment.StatusPickedUp,
			shipment.StatusInTransit,
			shipment.StatusOutForDelivery,
		} {
			require.NoError(t, s.CanTransitionTo(shipment.StatusCancelled))
		}
	})

	t.Run("backward_moves_rejected", func(t *testing.T) {
		require.Error(t, shipment.StatusInTransit.CanTransitionTo(shipment.StatusPickedUp))
		require.Error(t, shipment.StatusDelivered.CanTransitionTo(shipment.StatusPending))
	})

	t.Run("self_transition_rejected", func(t *testing.T) {
		require.Error(t, shipment.StatusInTransit.CanTransitionTo(shipment.StatusInTransit))
	})

	t.Run("terminal_states_absorb", func(t *testing.T) {
		require.Error(t, shipment.StatusDelivered.CanTransitionTo(shipment.StatusCancelled))
		require.Error(t, shipment.StatusCancelled.CanTransitionTo(shipment.StatusPending))
	})

	t.Run("unknown_target_rejected", func(t *testing.T) {
		require.Error(t, shipment.StatusPending.CanTransitionTo(shipment.Status("booked")))
	})
}
