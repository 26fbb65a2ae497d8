//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"commerce-core/internal/domain/identity"
	"commerce-core/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", "identity", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, identity.RoleOperator)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "operator", claims.Role)
}

func TestService_Rejections(t *testing.T) {
	svc := jwt.NewService("secret", "identity", time.Hour)
	userID := uuid.New()

	t.Run("expired", func(t *testing.T) {
		expired, err := jwt.NewService("secret", "identity", -time.Minute).GenerateToken(userID, identity.RoleCustomer)
		require.NoError(t, err)
		_, err = svc.ValidateToken(expired)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwt.NewService("other", "identity", time.Hour).GenerateToken(userID, identity.RoleCustomer)
		require.NoError(t, err)
		_, err = svc.ValidateToken(other)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := jwt.NewService("secret", "someone-else", time.Hour).GenerateToken(userID, identity.RoleCustomer)
		require.NoError(t, err)
		_, err = svc.ValidateToken(other)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		tok := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{UserID: userID, Role: "admin"})
		s, err := tok.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateToken(s)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
