package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"saldoamigo/internal/model"
)

const (
	// Issuer is the fixed iss claim stamped on every token.
	Issuer = "saldoamigo"
	// DefaultTokenTTL is used when no TTL is configured.
	DefaultTokenTTL = 2 * time.Hour
)

var (
	// ErrTokenMalformed is returned when the token cannot be parsed.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenSignatureInvalid is returned when the signature does not match
	// the configured secret.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
)

// Principal is the authenticated identity rebuilt from a verified token.
type Principal struct {
	ID    uint
	Email string
	Role  model.Role
}

// Claims represents JWT claims.
type Claims struct {
	UserID uint       `json:"user_id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies bearer tokens. Verification is stateless:
// the principal is rebuilt strictly from the claims, with no store lookup, so
// role changes made after issuance only take effect once the token expires.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a new JWT service with the given secret and TTL.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs a token carrying the user's identity and role.
func (s *JWTService) Issue(user *model.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    Issuer,
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and rebuilds the principal from
// its claims. Failures are classified for logging and metrics; callers must
// surface them uniformly.
func (s *JWTService) Verify(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return &Principal{
		ID:    claims.UserID,
		Email: claims.Subject,
		Role:  claims.Role,
	}, nil
}

// classifyError maps jwt parse errors onto the local sentinels. Anything that
// is neither an expiry nor a signature mismatch counts as malformed.
func classifyError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	default:
		return ErrTokenMalformed
	}
}
