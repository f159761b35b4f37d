package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saldoamigo/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:    42,
		Email: "maria@example.com",
		Role:  model.RoleAdmin,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), principal.ID)
	assert.Equal(t, "maria@example.com", principal.Email)
	assert.Equal(t, model.RoleAdmin, principal.Role)
}

func TestJWTService_Expiry(t *testing.T) {
	tests := []struct {
		name        string
		issuedAgo   time.Duration
		expectedErr error
	}{
		{
			name:      "one second before expiry",
			issuedAgo: time.Hour - time.Second,
		},
		{
			name:        "one second after expiry",
			issuedAgo:   time.Hour + time.Second,
			expectedErr: ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewJWTService("test-secret", time.Hour)
			svc.now = func() time.Time { return time.Now().Add(-tt.issuedAgo) }

			token, err := svc.Issue(testUser())
			require.NoError(t, err)

			svc.now = time.Now
			principal, err := svc.Verify(token)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, principal)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, principal)
			}
		})
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	principal, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
	assert.Nil(t, principal)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		principal, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed)
		assert.Nil(t, principal)
	}
}
