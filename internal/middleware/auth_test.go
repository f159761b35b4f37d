package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"saldoamigo/internal/auth"
	"saldoamigo/internal/model"
	"saldoamigo/pkg/logger"
)

func newProtectedServer(tokens *auth.JWTService, roles ...model.Role) *echo.Echo {
	logger.Init(logger.Options{})
	e := echo.New()
	mws := []echo.MiddlewareFunc{Auth(tokens)}
	if len(roles) > 0 {
		mws = append(mws, RBAC(roles...))
	}
	e.GET("/protected", func(c echo.Context) error {
		p := PrincipalFrom(c)
		if p == nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, map[string]string{"email": p.Email})
	}, mws...)
	return e
}

func request(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuth_MissingToken(t *testing.T) {
	tokens := auth.NewJWTService("secret", time.Hour)
	e := newProtectedServer(tokens)

	rec := request(e, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MalformedToken(t *testing.T) {
	tokens := auth.NewJWTService("secret", time.Hour)
	e := newProtectedServer(tokens)

	rec := request(e, "not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	issuer := auth.NewJWTService("other-secret", time.Hour)
	verifier := auth.NewJWTService("secret", time.Hour)
	e := newProtectedServer(verifier)

	token, err := issuer.Issue(&model.User{ID: 1, Email: "a@b.c", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := request(e, token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ValidTokenReachesHandler(t *testing.T) {
	tokens := auth.NewJWTService("secret", time.Hour)
	e := newProtectedServer(tokens)

	token, err := tokens.Issue(&model.User{ID: 1, Email: "a@b.c", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := request(e, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuth_RoleMatrix(t *testing.T) {
	tokens := auth.NewJWTService("secret", time.Hour)
	e := newProtectedServer(tokens, model.RoleAdmin)

	userToken, err := tokens.Issue(&model.User{ID: 1, Email: "u@b.c", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	adminToken, err := tokens.Issue(&model.User{ID: 2, Email: "a@b.c", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if rec := request(e, userToken); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for USER, got %d", rec.Code)
	}
	if rec := request(e, adminToken); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for ADMIN, got %d", rec.Code)
	}
	if rec := request(e, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}
