// Package tenant resolves who is calling. It registers tenants, verifies
// their credentials and issues the tokens that carry the owner ID into
// every ledger and reports call. The ledger itself never derives identity.
package tenant

import (
	"errors"
	"sync"
	"time"

	"github.com/fintrack-app/backend/internal/ledger"
)

var (
	ErrNameTaken          = errors.New("this name is already in use")
	ErrInvalidCredentials = errors.New("name or password is incorrect")
	ErrInvalidToken       = errors.New("the token is invalid or expired")
)

// Tenant is one registered user of the tracker. Its ID is the owner ID that
// scopes all ledger records.
type Tenant struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`

	passwordHash string
}

// Registry keeps all known tenants. Registering a tenant seeds its default
// categories in the ledger store.
type Registry struct {
	mu      sync.Mutex
	tenants map[uint64]Tenant
	byName  map[string]uint64
	ids     ledger.Sequence

	store  ledger.Store
	secret []byte
}

// NewRegistry returns an empty Registry that seeds new tenants into store
// and signs tokens with secret.
func NewRegistry(store ledger.Store, secret []byte) *Registry {
	return &Registry{
		tenants: make(map[uint64]Tenant),
		byName:  make(map[string]uint64),
		store:   store,
		secret:  secret,
	}
}

// Register creates a new tenant, seeds its default categories and returns
// the tenant together with a fresh token.
func (r *Registry) Register(name, password string) (Tenant, string, error) {
	if err := validateCredentials(name, password); err != nil {
		return Tenant{}, "", err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return Tenant{}, "", err
	}

	r.mu.Lock()
	if _, taken := r.byName[name]; taken {
		r.mu.Unlock()
		return Tenant{}, "", ErrNameTaken
	}

	tenant := Tenant{
		ID:           r.ids.Next(),
		Name:         name,
		CreatedAt:    time.Now().In(time.UTC),
		passwordHash: hash,
	}
	r.tenants[tenant.ID] = tenant
	r.byName[tenant.Name] = tenant.ID
	r.mu.Unlock()

	token, err := r.issueToken(tenant)
	if err == nil {
		err = r.store.SeedDefaultCategories(tenant.ID)
	}

	// A failed registration must not leave the name taken
	if err != nil {
		r.mu.Lock()
		delete(r.tenants, tenant.ID)
		delete(r.byName, tenant.Name)
		r.mu.Unlock()

		return Tenant{}, "", err
	}

	return tenant, token, nil
}

// Login verifies a tenant's credentials and returns a fresh token.
func (r *Registry) Login(name, password string) (Tenant, string, error) {
	r.mu.Lock()
	id, ok := r.byName[name]
	tenant := r.tenants[id]
	r.mu.Unlock()

	if !ok || !checkPassword(password, tenant.passwordHash) {
		return Tenant{}, "", ErrInvalidCredentials
	}

	token, err := r.issueToken(tenant)
	if err != nil {
		return Tenant{}, "", err
	}

	return tenant, token, nil
}

// Tenant returns a tenant by owner ID.
func (r *Registry) Tenant(id uint64) (Tenant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tenant, ok := r.tenants[id]
	return tenant, ok
}

func validateCredentials(name, password string) error {
	fields := make(map[string]string)

	if name == "" {
		fields["name"] = "name is required"
	}

	if len(password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	}

	if len(fields) > 0 {
		return ledger.ValidationError{Fields: fields}
	}

	return nil
}
