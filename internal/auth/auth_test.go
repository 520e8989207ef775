package auth_test

import (
	"testing"
	"time"

	"foodorder/internal/auth"
	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := auth.NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := hasher.Hash("s3cret99")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret99", hash)

	require.NoError(t, hasher.Verify(hash, "s3cret99"))
	require.Error(t, hasher.Verify(hash, "wrong password"))
}

func TestJWTManager_IssueAndParse(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)
	userID := kernel.NewUUID()

	token, err := manager.Issue(userID, identity.RoleRestaurantOwner)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := manager.Parse(token)
	require.NoError(t, err)
	assert.True(t, actor.ID().IsEqual(userID))
	assert.Equal(t, identity.RoleRestaurantOwner, actor.Role())
}

func TestJWTManager_Parse_WrongSecret(t *testing.T) {
	token, err := auth.NewJWTManager("secret-a", time.Hour).Issue(kernel.NewUUID(), identity.RoleCustomer)
	require.NoError(t, err)

	_, err = auth.NewJWTManager("secret-b", time.Hour).Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTManager_Parse_ExpiredToken(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Issue(kernel.NewUUID(), identity.RoleCustomer)
	require.NoError(t, err)

	_, err = manager.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestJWTManager_Parse_Garbage(t *testing.T) {
	_, err := auth.NewJWTManager("test-secret", time.Hour).Parse("not.a.token")

	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
