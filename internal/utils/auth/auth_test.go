package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-rewards/internal/serviceerrs"
)

var testSecret = []byte("test-secret")

func TestCheckToken(t *testing.T) {
	valid, err := IssueToken("user-1", testSecret)
	require.NoError(t, err)
	expired, err := buildJWTString("user-1", testSecret, -time.Minute)
	require.NoError(t, err)
	foreign, err := IssueToken("user-1", []byte("other-secret"))
	require.NoError(t, err)
	anonymous, err := IssueToken("", testSecret)
	require.NoError(t, err)

	tests := []struct {
		wantErr error
		name    string
		token   string
		userID  string
	}{
		{name: "valid", token: valid, userID: "user-1"},
		{name: "expired", token: expired, wantErr: serviceerrs.ErrTokenExpired},
		{name: "wrong signature", token: foreign, wantErr: serviceerrs.ErrUnauthorized},
		{name: "garbage", token: "not-a-jwt", wantErr: serviceerrs.ErrUnauthorized},
		{name: "no user", token: anonymous, wantErr: serviceerrs.ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := CheckToken(tt.token, testSecret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		prepare func(r *http.Request)
		name    string
		want    string
		found   bool
	}{
		{
			name:    "bearer header",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") },
			want:    "abc",
			found:   true,
		},
		{
			name: "cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "from-cookie"})
			},
			want:  "from-cookie",
			found: true,
		},
		{
			name: "header wins over cookie",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer from-header")
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "from-cookie"})
			},
			want:  "from-header",
			found: true,
		},
		{
			name:    "other scheme",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") },
		},
		{
			name:    "empty bearer",
			prepare: func(r *http.Request) { r.Header.Set("Authorization", "Bearer ") },
		},
		{
			name:    "nothing",
			prepare: func(*http.Request) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(r)
			token, ok := TokenFromRequest(r)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestIssueCookie(t *testing.T) {
	cookie, err := IssueCookie("user-2", testSecret)
	require.NoError(t, err)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	claims, err := CheckToken(cookie.Value, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.UserID)
}
