package customers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository keeps customers in memory, keyed by email.
type mockRepository struct {
	byEmail map[string]*Customer
}

func newMockRepository() *mockRepository {
	return &mockRepository{byEmail: make(map[string]*Customer)}
}

func (m *mockRepository) Create(customer *Customer) error {
	customer.ID = uuid.New()
	if customer.Email != "" {
		m.byEmail[customer.Email] = customer
	}
	return nil
}

func (m *mockRepository) GetByID(id uuid.UUID) (*Customer, error) {
	for _, c := range m.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

func (m *mockRepository) GetByEmail(email string) (*Customer, error) {
	if c, ok := m.byEmail[email]; ok {
		return c, nil
	}
	return nil, ErrCustomerNotFound
}

func validSignup() SignupRequest {
	return SignupRequest{
		Name:     "Priya Desai",
		Email:    "priya@example.com",
		Password: "secret123",
		Age:      31,
		Gender:   "Female",
	}
}

func TestSignupCreatesAccount(t *testing.T) {
	svc := NewService(newMockRepository())

	user, err := svc.Signup(validSignup())
	require.NoError(t, err)

	assert.Equal(t, "Priya Desai", user.Name)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(validSignup())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupNormalizesEmailCase(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	req := validSignup()
	req.Email = "  PRIYA@Example.com "
	_, err = svc.Signup(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	_, err := svc.Signup(validSignup())
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "priya@example.com", password: "secret123"},
		{name: "wrong password", email: "priya@example.com", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown email", email: "other@example.com", password: "secret123", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "priya@example.com", user.Email)
		})
	}
}
