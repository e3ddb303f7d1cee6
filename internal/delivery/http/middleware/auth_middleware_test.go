package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	mockSvc "marketplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokenSvc)
	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, reached
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()

	mockTokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{
			UserID:   userID,
			Username: "alice",
			Type:     entity.UserTypeCustomer,
		}, nil)

	rec, reached := runAuthenticate(t, mockTokenSvc, "Bearer valid-token")
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached := runAuthenticate(t, mockTokenSvc, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached := runAuthenticate(t, mockTokenSvc, "Basic dXNlcjpwYXNz")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	mockTokenSvc := mockSvc.NewMockTokenService(t)

	mockTokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	rec, reached := runAuthenticate(t, mockTokenSvc, "Bearer garbage")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireType(t *testing.T) {
	tests := []struct {
		name      string
		tokenType any
		required  entity.UserType
		wantCode  int
		wantPass  bool
	}{
		{"matching type", entity.UserTypeMerchant, entity.UserTypeMerchant, http.StatusOK, true},
		{"wrong type", entity.UserTypeCustomer, entity.UserTypeMerchant, http.StatusForbidden, false},
		{"type missing", nil, entity.UserTypeMerchant, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/products", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.tokenType != nil {
				c.Set(ContextKeyUserType, tt.tokenType)
			}

			reached := false
			next := func(c echo.Context) error {
				reached = true

				return c.NoContent(http.StatusOK)
			}

			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
			err := m.RequireType(tt.required)(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPass, reached)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestUserID_Extraction(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, ok := UserID(c)
	assert.False(t, ok)

	expected := uuid.New()
	c.Set(ContextKeyUserID, expected)

	got, ok := UserID(c)
	assert.True(t, ok)
	assert.Equal(t, expected, got)
}
