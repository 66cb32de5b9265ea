package types

import "github.com/golang-jwt/jwt/v5"

// Claims carried by the identity provider's bearer token. The subject is the user id.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
	jwt.RegisteredClaims
}
