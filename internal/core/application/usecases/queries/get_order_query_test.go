package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role identity.Role) identity.Actor {
	t.Helper()
	actor, err := identity.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := newActor(t, identity.RoleCustomer)

	query, err := queries.NewGetOrderQuery(orderID, actor)

	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, actor, query.Actor())
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{}, newActor(t, identity.RoleCustomer))

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetOrderQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.NewUUID(), identity.Actor{})

	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	query := queries.GetOrderQuery{}

	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
