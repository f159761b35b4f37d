package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"saldoamigo/internal/auth"
	"saldoamigo/internal/errors"
	"saldoamigo/internal/model"
	"saldoamigo/internal/pagination"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, p pagination.Params) ([]model.User, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindByUsernamePrefix(ctx context.Context, prefix string, p pagination.Params) ([]model.User, int64, error) {
	args := m.Called(ctx, prefix, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		role          model.Role
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			email: "ana@example.com",
			role:  model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "email already registered",
			email: "ana@example.com",
			role:  model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@example.com").Return(&model.User{Email: "ana@example.com"}, nil)
			},
			expectedError: errors.ErrEmailAlreadyRegistered,
		},
		{
			name:  "email already registered with different case",
			email: "Ana@Example.COM",
			role:  model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				// the lookup must already see the lowercased email
				m.On("FindByEmail", mock.Anything, "ana@example.com").Return(&model.User{Email: "ana@example.com"}, nil)
			},
			expectedError: errors.ErrEmailAlreadyRegistered,
		},
		{
			name:          "unknown role",
			email:         "ana@example.com",
			role:          model.Role("SUPERVISOR"),
			setupMock:     func(m *MockUserRepository) {},
			expectedError: errors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			tokens := auth.NewJWTService("test-secret", time.Hour)
			svc := NewAuthService(mockRepo, tokens)

			user, err := svc.Register(context.Background(), "ana", tt.email, "11999990000", "password123", tt.role)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "ana@example.com", user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password123", user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	require.NoError(t, err)
	stored := &model.User{
		ID:           7,
		Username:     "ana",
		Email:        "ana@example.com",
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "ana@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "ana@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@example.com").Return(stored, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			tokens := auth.NewJWTService("test-secret", time.Hour)
			svc := NewAuthService(mockRepo, tokens)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, stored.ID, user.ID)

				// the embedded identity and role must survive a round trip
				principal, err := tokens.Verify(token)
				require.NoError(t, err)
				assert.Equal(t, stored.ID, principal.ID)
				assert.Equal(t, stored.Email, principal.Email)
				assert.Equal(t, stored.Role, principal.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_StoreErrorIsNotInvalidCredentials(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(nil, gorm.ErrInvalidDB)

	tokens := auth.NewJWTService("test-secret", time.Hour)
	svc := NewAuthService(mockRepo, tokens)

	_, _, err := svc.Login(context.Background(), "ana@example.com", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errors.ErrInvalidCredentials)
}
