package jwt

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestSignAndParse(t *testing.T) {
	SetSecret("test-secret")

	p := Principal{ID: "42", Name: "Alice", Email: "a@x.com", Role: "user"}
	token, err := Sign(p)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, p, claims.User)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParse_WrongSecret(t *testing.T) {
	SetSecret("secret-one")
	token, err := Sign(Principal{ID: "1"})
	assert.NoError(t, err)

	SetSecret("secret-two")
	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParse_RejectsNonHMAC(t *testing.T) {
	SetSecret("test-secret")

	// alg=none tokens must never validate.
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{User: Principal{ID: "1"}})
	signed, err := tok.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = Parse(signed)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	SetSecret("test-secret")
	_, err := Parse("not-a-token")
	assert.Error(t, err)
}
