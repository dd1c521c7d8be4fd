package tenant_test

import (
	"errors"
	"testing"

	"github.com/fintrack-app/backend/internal/ledger"
	"github.com/fintrack-app/backend/internal/tenant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedFailingStore fails category seeding while failSeed is set.
type seedFailingStore struct {
	ledger.Store
	failSeed bool
}

func (s *seedFailingStore) SeedDefaultCategories(owner uint64) error {
	if s.failSeed {
		return errors.New("disk full")
	}

	return s.Store.SeedDefaultCategories(owner)
}

func newRegistry(t *testing.T) (*tenant.Registry, ledger.Store) {
	t.Helper()

	store := ledger.NewMemoryStore()
	return tenant.NewRegistry(store, []byte("test-secret")), store
}

func TestRegister(t *testing.T) {
	registry, store := newRegistry(t)

	registered, token, err := registry.Register("morre", "correct horse battery staple")
	require.Nil(t, err)

	assert.NotZero(t, registered.ID)
	assert.Equal(t, "morre", registered.Name)
	assert.NotEmpty(t, token)
	assert.False(t, registered.CreatedAt.IsZero())

	// Registration seeds the default categories
	categories, err := store.Categories(registered.ID)
	require.Nil(t, err)
	assert.Len(t, categories, 9)
}

func TestRegisterNameTaken(t *testing.T) {
	registry, _ := newRegistry(t)

	_, _, err := registry.Register("morre", "correct horse battery staple")
	require.Nil(t, err)

	_, _, err = registry.Register("morre", "another password entirely")
	assert.ErrorIs(t, err, tenant.ErrNameTaken)
}

func TestRegisterValidation(t *testing.T) {
	registry, _ := newRegistry(t)

	tests := []struct {
		name     string
		password string
		field    string
	}{
		{"", "correct horse battery staple", "name"},
		{"morre", "short", "password"},
		{"morre", "", "password"},
	}

	for _, tt := range tests {
		_, _, err := registry.Register(tt.name, tt.password)

		var validation ledger.ValidationError
		assert.ErrorAs(t, err, &validation)
		assert.Contains(t, validation.Fields, tt.field)
	}
}

func TestRegisterRollsBackOnSeedFailure(t *testing.T) {
	store := &seedFailingStore{Store: ledger.NewMemoryStore(), failSeed: true}
	registry := tenant.NewRegistry(store, []byte("test-secret"))

	_, _, err := registry.Register("morre", "correct horse battery staple")
	require.NotNil(t, err)

	// The failed registration must not leave the tenant behind
	_, _, err = registry.Login("morre", "correct horse battery staple")
	assert.ErrorIs(t, err, tenant.ErrInvalidCredentials)

	// Once the store recovers, the name is free to register
	store.failSeed = false
	registered, _, err := registry.Register("morre", "correct horse battery staple")
	require.Nil(t, err)

	categories, err := store.Categories(registered.ID)
	require.Nil(t, err)
	assert.Len(t, categories, 9)
}

func TestLogin(t *testing.T) {
	registry, _ := newRegistry(t)

	registered, _, err := registry.Register("morre", "correct horse battery staple")
	require.Nil(t, err)

	loggedIn, token, err := registry.Login("morre", "correct horse battery staple")
	require.Nil(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	registry, _ := newRegistry(t)

	_, _, err := registry.Register("morre", "correct horse battery staple")
	require.Nil(t, err)

	_, _, err = registry.Login("morre", "wrong password here")
	assert.ErrorIs(t, err, tenant.ErrInvalidCredentials)

	_, _, err = registry.Login("nobody", "correct horse battery staple")
	assert.ErrorIs(t, err, tenant.ErrInvalidCredentials)
}

func TestVerifyToken(t *testing.T) {
	registry, _ := newRegistry(t)

	registered, token, err := registry.Register("morre", "correct horse battery staple")
	require.Nil(t, err)

	owner, err := registry.VerifyToken(token)
	require.Nil(t, err)
	assert.Equal(t, registered.ID, owner)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	registry, _ := newRegistry(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := registry.VerifyToken(token)
		assert.ErrorIs(t, err, tenant.ErrInvalidToken)
	}
}

func TestVerifyTokenRejectsForeignSecret(t *testing.T) {
	registry, _ := newRegistry(t)
	store := ledger.NewMemoryStore()
	other := tenant.NewRegistry(store, []byte("another-secret"))

	_, token, err := other.Register("morre", "correct horse battery staple")
	require.Nil(t, err)

	_, err = registry.VerifyToken(token)
	assert.ErrorIs(t, err, tenant.ErrInvalidToken)
}

func TestTenantLookup(t *testing.T) {
	registry, _ := newRegistry(t)

	registered, _, err := registry.Register("morre", "correct horse battery staple")
	require.Nil(t, err)

	found, ok := registry.Tenant(registered.ID)
	assert.True(t, ok)
	assert.Equal(t, registered.Name, found.Name)

	_, ok = registry.Tenant(registered.ID + 1)
	assert.False(t, ok)
}
