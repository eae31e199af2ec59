package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "Somsri", "Deejai")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.ID)
	assert.Equal(t, "Somsri", claims.Firstname)
	assert.Equal(t, "Deejai", claims.Lastname)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseExpiredToken(t *testing.T) {
	// Token dengan tanda tangan sah tetapi sudah lewat masa berlaku
	claims := &CustomClaims{
		ID:        7,
		Firstname: "Old",
		Lastname:  "Token",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
			Issuer:    "FoodOrderApp",
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTSecret)
	assert.NoError(t, err)

	parsed, err := ParseToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestParseTamperedToken(t *testing.T) {
	token, err := GenerateToken(1, "A", "B")
	assert.NoError(t, err)

	parsed, err := ParseToken(token + "x")
	assert.Error(t, err)
	assert.Nil(t, parsed)
}
