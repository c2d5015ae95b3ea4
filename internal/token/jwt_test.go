package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 0)
	u := uuid.New()

	tok, err := j.Generate(u)
	require.NoError(t, err)
	got, err := j.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	u := uuid.New()

	tok, err := NewJWT("secret", 0).Generate(u)
	require.NoError(t, err)

	_, err = NewJWT("othersecret", 0).Parse(tok)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret", 0)

	_, err := j.Parse("not.a.token")
	require.Error(t, err)

	_, err = j.Parse("")
	require.Error(t, err)
}

func TestJWT_Tampered(t *testing.T) {
	j := NewJWT("secret", 0)

	tok, err := j.Generate(uuid.New())
	require.NoError(t, err)

	_, err = j.Parse(tok + "xx")
	require.Error(t, err)
}

func TestJWT_NoExpiryByDefault(t *testing.T) {
	j := &JWT{secretKey: "secret"}
	u := uuid.New()

	tok, err := j.Generate(u)
	require.NoError(t, err)

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
	require.Equal(t, u, claims.UserID)
}

func TestJWT_Expired(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: uuid.New(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret", time.Minute).Parse(tok)
	require.Error(t, err)
}
