package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

const (
	TokenExpire = 3 * time.Hour
	CookieName  = "jwt-token"

	bearerPrefix = "Bearer "
)

type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

func buildJWTString(id string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
			UserID: id,
		},
	)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

// IssueToken signs an identity token for the user. Tokens are minted by the auth
// collaborator in production; the service uses this in tests and tooling.
func IssueToken(id string, secret []byte) (string, error) {
	return buildJWTString(id, secret, TokenExpire)
}

func IssueCookie(id string, secret []byte) (http.Cookie, error) {
	jwtString, err := IssueToken(id, secret)
	if err != nil {
		return http.Cookie{}, fmt.Errorf("authentication failed: %w", err)
	}
	return http.Cookie{
		Name:     CookieName,
		Value:    jwtString,
		HttpOnly: true,
	}, nil
}

// TokenFromRequest takes the token from the Authorization header, then from the cookie.
func TokenFromRequest(r *http.Request) (string, bool) {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		token := strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
		return token, token != ""
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func CheckToken(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, serviceerrs.ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("failed to parse token: %w", errors.Join(serviceerrs.ErrUnauthorized, err))
	}
	if claims.UserID == "" {
		return Claims{}, fmt.Errorf("token carries no user: %w", serviceerrs.ErrUnauthorized)
	}

	return *claims, nil
}
