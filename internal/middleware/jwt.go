package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer identifies this service in every token it signs.
const TokenIssuer = "gestion-locative"

// TokenTTL is the only revocation mechanism: tokens are stateless and
// simply stop being accepted after two hours.
const TokenTTL = 2 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the identity embedded in each bearer token.
type Claims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// GenerateToken signs an HS256 token carrying user id, email and role.
func GenerateToken(secret []byte, c Claims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   c.UserID.String(),
		"email": c.Email,
		"role":  c.Role,
		"iss":   TokenIssuer,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	})
	return token.SignedString(secret)
}

// ValidateToken checks signature, issuer and expiry, and returns the
// embedded identity. Expired tokens are reported distinctly from
// malformed or mis-signed ones.
func ValidateToken(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &Claims{UserID: userID, Email: email, Role: role}, nil
}
