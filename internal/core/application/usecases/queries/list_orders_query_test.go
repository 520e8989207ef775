package queries_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_ValidScopes(t *testing.T) {
	actor := newActor(t, identity.RoleAdmin)
	scopeID := kernel.NewUUID()

	for _, scope := range []queries.ListScope{
		queries.ScopeCustomer, queries.ScopeRestaurant, queries.ScopeAgent,
	} {
		query, err := queries.NewListOrdersQuery(scope, scopeID, actor)

		require.NoError(t, err)
		assert.Equal(t, scope, query.Scope())
		assert.Equal(t, scopeID, query.ScopeID())
	}
}

func TestNewListOrdersQuery_AllScopeNeedsNoID(t *testing.T) {
	query, err := queries.NewListOrdersQuery(queries.ScopeAll, kernel.UUID{}, newActor(t, identity.RoleAdmin))

	require.NoError(t, err)
	assert.Equal(t, queries.ScopeAll, query.Scope())
}

func TestNewListOrdersQuery_ScopeNeedsID(t *testing.T) {
	_, err := queries.NewListOrdersQuery(queries.ScopeCustomer, kernel.UUID{}, newActor(t, identity.RoleCustomer))

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewListOrdersQuery_UnknownScope(t *testing.T) {
	_, err := queries.NewListOrdersQuery("everything", kernel.NewUUID(), newActor(t, identity.RoleAdmin))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListOrdersQuery_NotConstructed(t *testing.T) {
	query := queries.ListOrdersQuery{}

	require.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}
