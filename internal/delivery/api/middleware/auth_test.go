package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token sets the actor", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{
			Role:             "seller",
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
		}, nil).Once()

		var seen usecase.Actor
		next := func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			assert.True(t, ok)
			seen = actor

			return nil
		}

		err := NewAuthMiddleware(tokenSvc).Authenticate(next)(newAuthContext("Bearer good-token"))

		require.NoError(t, err)
		assert.Equal(t, usecase.Actor{UserID: userID, Role: entity.RoleSeller}, seen)
	})

	tests := []struct {
		name    string
		header  string
		claims  *service.Claims
		tokErr  error
		wantErr error
	}{
		{name: "missing header", header: "", wantErr: domainerrors.ErrUnauthorized},
		{name: "not a bearer", header: "Basic abc", wantErr: domainerrors.ErrUnauthorized},
		{name: "expired", header: "Bearer t", tokErr: errors.New("token expired"), wantErr: domainerrors.ErrTokenInvalid},
		{
			name:    "bad subject",
			header:  "Bearer t",
			claims:  &service.Claims{Role: "customer", RegisteredClaims: jwt.RegisteredClaims{Subject: "nope"}},
			wantErr: domainerrors.ErrTokenInvalid,
		},
		{
			name:    "unknown role",
			header:  "Bearer t",
			claims:  &service.Claims{Role: "root", RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}},
			wantErr: domainerrors.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.claims != nil || tt.tokErr != nil {
				tokenSvc.EXPECT().ValidateToken("t").Return(tt.claims, tt.tokErr).Once()
			}

			next := func(c echo.Context) error {
				t.Fatal("next must not run")

				return nil
			}

			err := NewAuthMiddleware(tokenSvc).Authenticate(next)(newAuthContext(tt.header))

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil)
	ok := func(c echo.Context) error { return nil }

	t.Run("allowed", func(t *testing.T) {
		c := newAuthContext("")
		deliverycontext.SetActor(c, usecase.Actor{UserID: uuid.New(), Role: entity.RoleShipper})

		err := m.RequireRole(entity.RoleSeller, entity.RoleShipper)(ok)(c)

		assert.NoError(t, err)
	})

	t.Run("wrong role", func(t *testing.T) {
		c := newAuthContext("")
		deliverycontext.SetActor(c, usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer})

		err := m.RequireRole(entity.RoleAdmin)(ok)(c)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("no actor", func(t *testing.T) {
		err := m.RequireRole(entity.RoleAdmin)(ok)(newAuthContext(""))

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
