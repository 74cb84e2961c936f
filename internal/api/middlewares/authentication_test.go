package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-rewards/internal/utils/auth"
)

var testSecret = []byte("middleware-secret")

func identityEcho(w http.ResponseWriter, r *http.Request) {
	id, ok := UserID(r.Context())
	if !ok {
		id = "anonymous"
	}
	_, _ = w.Write([]byte(id))
}

func TestAuthentication(t *testing.T) {
	valid, err := auth.IssueToken("user-1", testSecret)
	require.NoError(t, err)
	foreign, err := auth.IssueToken("user-1", []byte("another-secret"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantBody string
		wantMsg  string
		wantCode int
		required bool
	}{
		{
			name:     "valid token",
			header:   "Bearer " + valid,
			wantCode: http.StatusOK,
			wantBody: "user-1",
		},
		{
			name:     "anonymous allowed",
			wantCode: http.StatusOK,
			wantBody: "anonymous",
		},
		{
			name:     "anonymous rejected",
			required: true,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Authentication required",
		},
		{
			name:     "foreign token",
			header:   "Bearer " + foreign,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Invalid token",
		},
		{
			name:     "foreign token when required",
			header:   "Bearer " + foreign,
			required: true,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Invalid token",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Authentication(testSecret, tt.required)(http.HandlerFunc(identityEcho))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantCode, rr.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, rr.Body.String())
				return
			}
			assert.JSONEq(t,
				`{"statusCode":401,"success":false,"errorCode":"UNAUTHORIZED","message":"`+tt.wantMsg+`"}`,
				rr.Body.String())
		})
	}
}

func TestAuthentication_cookie(t *testing.T) {
	cookie, err := auth.IssueCookie("user-2", testSecret)
	require.NoError(t, err)

	h := Authentication(testSecret, true)(http.HandlerFunc(identityEcho))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&cookie)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-2", rr.Body.String())
}
