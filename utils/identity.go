package utils

import (
	"errors"

	"github.com/slicycode/file-drive/config"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the payload of a bearer token issued by the external
// identity provider. TokenIdentifier is the stable per-user identifier the
// principal resolver keys on.
type IdentityClaims struct {
	TokenIdentifier string `json:"token_identifier"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar"`
	jwt.RegisteredClaims
}

var ErrInvalidIdentityToken = errors.New("invalid identity token")

// VerifyIdentityToken parses and validates an identity provider token.
func VerifyIdentityToken(tokenString string) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.Auth.IdentitySecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid || claims.TokenIdentifier == "" {
		return nil, ErrInvalidIdentityToken
	}
	return claims, nil
}
