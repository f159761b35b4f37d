package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"saldoamigo/internal/errors"
	"saldoamigo/internal/model"
	"saldoamigo/pkg/logger"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, phone, password string, role model.Role) (*model.User, error) {
	args := m.Called(ctx, username, email, phone, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	logger.Init(logger.Options{})
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func postJSON(e *echo.Echo, path, body string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Login(t *testing.T) {
	user := &model.User{ID: 42, Email: "ana@example.com", Role: model.RoleUser}

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *MockAuthService)
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "success returns token, role and id",
			body: `{"email":"ana@example.com","password":"secret123"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "ana@example.com", "secret123").
					Return("signed-token", user, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, model.RoleUser, resp.Role)
				assert.Equal(t, uint(42), resp.ID)
			},
		},
		{
			name: "invalid credentials",
			body: `{"email":"ana@example.com","password":"wrong"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "ana@example.com", "wrong").
					Return("", nil, errors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp errors.ErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "INVALID_CREDENTIALS", resp.Code)
			},
		},
		{
			name:       "missing password fails validation",
			body:       `{"email":"ana@example.com"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed email fails validation",
			body:       `{"email":"not-an-email","password":"secret123"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.setupMock(mockService)
			h := NewAuthHandler(mockService)

			rec := postJSON(newTestEcho(), "/api/auth/login", tt.body, h.Login)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *MockAuthService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"username":"ana","email":"ana@example.com","phone":"+5511999990000","password":"secret123","role":"USER"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "ana", "ana@example.com", "+5511999990000", "secret123", model.RoleUser).
					Return(&model.User{ID: 1, Email: "ana@example.com", Role: model.RoleUser}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "email already registered",
			body: `{"username":"ana","email":"ana@example.com","password":"secret123","role":"USER"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "ana", "ana@example.com", "", "secret123", model.RoleUser).
					Return(nil, errors.ErrEmailAlreadyRegistered)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "EMAIL_ALREADY_REGISTERED",
		},
		{
			name:       "unknown role fails validation",
			body:       `{"username":"ana","email":"ana@example.com","password":"secret123","role":"ROOT"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password fails validation",
			body:       `{"username":"ana","email":"ana@example.com","password":"abc","role":"USER"}`,
			setupMock:  func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.setupMock(mockService)
			h := NewAuthHandler(mockService)

			rec := postJSON(newTestEcho(), "/api/auth/register", tt.body, h.Register)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var resp errors.ErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}
