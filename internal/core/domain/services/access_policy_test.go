package services_test

import (
	"testing"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, id kernel.UUID, role identity.Role) identity.Actor {
	t.Helper()
	actor, err := identity.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

func pendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	address, err := kernel.NewAddress("42 MG Road")
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), "Masala Dosa", 120, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), address, "CASH", "", 25, []order.Line{line})
	require.NoError(t, err)
	return o
}

func dispatchedOrder(t *testing.T, customerID, agentID kernel.UUID) *order.Order {
	t.Helper()
	o := pendingOrder(t, customerID)
	owner := mustActor(t, kernel.NewUUID(), identity.RoleRestaurantOwner)
	require.NoError(t, o.TransitionTo(order.Confirmed, owner))
	require.NoError(t, o.TransitionTo(order.Preparing, owner))
	require.NoError(t, o.TransitionTo(order.OutForDelivery, mustActor(t, agentID, identity.RoleAdmin)))
	return o
}

func TestOrderAccessPolicy_CanViewOrder(t *testing.T) {
	policy := services.NewOrderAccessPolicy()
	customerID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	o := pendingOrder(t, customerID)

	t.Run("admin always allowed", func(t *testing.T) {
		decision := policy.CanViewOrder(o, ownerID, mustActor(t, kernel.NewUUID(), identity.RoleAdmin))

		assert.True(t, decision.Allowed())
		require.NoError(t, decision.Err())
	})

	t.Run("customer sees own order only", func(t *testing.T) {
		own := policy.CanViewOrder(o, ownerID, mustActor(t, customerID, identity.RoleCustomer))
		assert.True(t, own.Allowed())

		other := policy.CanViewOrder(o, ownerID, mustActor(t, kernel.NewUUID(), identity.RoleCustomer))
		assert.False(t, other.Allowed())
		require.ErrorIs(t, other.Err(), errs.ErrUnauthorized)
	})

	t.Run("owner gated on restaurant ownership", func(t *testing.T) {
		owning := policy.CanViewOrder(o, ownerID, mustActor(t, ownerID, identity.RoleRestaurantOwner))
		assert.True(t, owning.Allowed())

		other := policy.CanViewOrder(o, ownerID, mustActor(t, kernel.NewUUID(), identity.RoleRestaurantOwner))
		assert.False(t, other.Allowed())
	})

	t.Run("agent gated on assignment", func(t *testing.T) {
		agentID := kernel.NewUUID()
		dispatched := dispatchedOrder(t, customerID, agentID)

		assigned := policy.CanViewOrder(dispatched, ownerID, mustActor(t, agentID, identity.RoleDeliveryAgent))
		assert.True(t, assigned.Allowed())

		unassigned := policy.CanViewOrder(o, ownerID, mustActor(t, agentID, identity.RoleDeliveryAgent))
		assert.False(t, unassigned.Allowed())
	})

	t.Run("open order read exposes single reads to any caller", func(t *testing.T) {
		open := services.NewOrderAccessPolicy(services.WithOpenOrderRead(true))

		decision := open.CanViewOrder(o, ownerID, mustActor(t, kernel.NewUUID(), identity.RoleCustomer))

		assert.True(t, decision.Allowed())
		assert.True(t, open.OpenOrderRead())
	})
}

func TestOrderAccessPolicy_CanMutateStatus(t *testing.T) {
	policy := services.NewOrderAccessPolicy()
	customerID := kernel.NewUUID()
	ownerID := kernel.NewUUID()
	o := pendingOrder(t, customerID)

	t.Run("admin allowed", func(t *testing.T) {
		decision := policy.CanMutateStatus(o, ownerID, mustActor(t, kernel.NewUUID(), identity.RoleAdmin))

		assert.True(t, decision.Allowed())
	})

	t.Run("owner of another restaurant denied", func(t *testing.T) {
		decision := policy.CanMutateStatus(o, ownerID, mustActor(t, kernel.NewUUID(), identity.RoleRestaurantOwner))

		assert.False(t, decision.Allowed())
		require.ErrorIs(t, decision.Err(), errs.ErrUnauthorized)
	})

	t.Run("unassigned agent denied", func(t *testing.T) {
		decision := policy.CanMutateStatus(o, ownerID, mustActor(t, kernel.NewUUID(), identity.RoleDeliveryAgent))

		assert.False(t, decision.Allowed())
	})

	t.Run("assigned agent allowed", func(t *testing.T) {
		agentID := kernel.NewUUID()
		dispatched := dispatchedOrder(t, customerID, agentID)

		decision := policy.CanMutateStatus(dispatched, ownerID, mustActor(t, agentID, identity.RoleDeliveryAgent))

		assert.True(t, decision.Allowed())
	})

	t.Run("owning customer allowed for the cancel path", func(t *testing.T) {
		decision := policy.CanMutateStatus(o, ownerID, mustActor(t, customerID, identity.RoleCustomer))

		assert.True(t, decision.Allowed())
	})
}

func TestOrderAccessPolicy_CanSettlePayment(t *testing.T) {
	policy := services.NewOrderAccessPolicy()
	ownerID := kernel.NewUUID()

	t.Run("admin allowed", func(t *testing.T) {
		decision := policy.CanSettlePayment(ownerID, mustActor(t, kernel.NewUUID(), identity.RoleAdmin))

		assert.True(t, decision.Allowed())
	})

	t.Run("owning restaurant owner allowed", func(t *testing.T) {
		decision := policy.CanSettlePayment(ownerID, mustActor(t, ownerID, identity.RoleRestaurantOwner))

		assert.True(t, decision.Allowed())
	})

	t.Run("owner of another restaurant denied", func(t *testing.T) {
		decision := policy.CanSettlePayment(ownerID, mustActor(t, kernel.NewUUID(), identity.RoleRestaurantOwner))

		assert.False(t, decision.Allowed())
		require.ErrorIs(t, decision.Err(), errs.ErrUnauthorized)
	})

	t.Run("customer and agent denied", func(t *testing.T) {
		for _, role := range []identity.Role{identity.RoleCustomer, identity.RoleDeliveryAgent} {
			decision := policy.CanSettlePayment(ownerID, mustActor(t, kernel.NewUUID(), role))

			assert.False(t, decision.Allowed())
			require.ErrorIs(t, decision.Err(), errs.ErrUnauthorized)
		}
	})
}

func TestOrderAccessPolicy_Listings(t *testing.T) {
	policy := services.NewOrderAccessPolicy()
	admin := mustActor(t, kernel.NewUUID(), identity.RoleAdmin)

	t.Run("customer listings", func(t *testing.T) {
		customerID := kernel.NewUUID()

		assert.True(t, policy.CanListCustomerOrders(customerID, mustActor(t, customerID, identity.RoleCustomer)).Allowed())
		assert.True(t, policy.CanListCustomerOrders(customerID, admin).Allowed())
		assert.False(t, policy.CanListCustomerOrders(customerID, mustActor(t, kernel.NewUUID(), identity.RoleCustomer)).Allowed())
	})

	t.Run("restaurant listings verify ownership first", func(t *testing.T) {
		ownerID := kernel.NewUUID()

		assert.True(t, policy.CanListRestaurantOrders(ownerID, mustActor(t, ownerID, identity.RoleRestaurantOwner)).Allowed())
		assert.True(t, policy.CanListRestaurantOrders(ownerID, admin).Allowed())
		assert.False(t, policy.CanListRestaurantOrders(ownerID, mustActor(t, kernel.NewUUID(), identity.RoleRestaurantOwner)).Allowed())
	})

	t.Run("agent listings", func(t *testing.T) {
		agentID := kernel.NewUUID()

		assert.True(t, policy.CanListAgentOrders(agentID, mustActor(t, agentID, identity.RoleDeliveryAgent)).Allowed())
		assert.False(t, policy.CanListAgentOrders(agentID, mustActor(t, kernel.NewUUID(), identity.RoleDeliveryAgent)).Allowed())
	})

	t.Run("all-orders listing is admin only", func(t *testing.T) {
		assert.True(t, policy.CanListAllOrders(admin).Allowed())

		for _, role := range []identity.Role{
			identity.RoleCustomer, identity.RoleRestaurantOwner, identity.RoleDeliveryAgent,
		} {
			decision := policy.CanListAllOrders(mustActor(t, kernel.NewUUID(), role))
			assert.False(t, decision.Allowed())
			require.ErrorIs(t, decision.Err(), errs.ErrUnauthorized)
		}
	})
}
