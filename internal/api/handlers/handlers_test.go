package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/gopher-rewards/internal/model"
)

type ResponseFixture struct {
	TestcaseName string          `json:"name"`
	Responses    json.RawMessage `json:"responses"`
}

func loadResponseFixtures(t *testing.T, file string) map[string]string {
	t.Helper()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	var temp []ResponseFixture
	require.NoError(t, json.Unmarshal(data, &temp))

	fixtures := make(map[string]string)
	for _, f := range temp {
		fixtures[f.TestcaseName] = string(f.Responses)
	}
	return fixtures
}

type testRequest struct {
	urlParams map[string]string
	method    string
	target    string
	body      string
	userID    string
}

func (tr testRequest) build() *http.Request {
	var body io.Reader = http.NoBody
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.target, body)

	ctx := req.Context()
	if len(tr.urlParams) != 0 {
		rctx := chi.NewRouteContext()
		for k, v := range tr.urlParams {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if tr.userID != "" {
		ctx = context.WithValue(ctx, model.KeyContextUserID, tr.userID)
	}
	return req.WithContext(ctx)
}

// serveAndCheck runs handlerFunc and compares the response with the named fixture.
// An empty fixture name skips the body check.
func serveAndCheck(t *testing.T,
	handlerFunc http.HandlerFunc,
	req *http.Request,
	fixtures map[string]string,
	fixture string,
	wantCode int,
) {
	t.Helper()

	rr := httptest.NewRecorder()
	handlerFunc(rr, req)

	res := rr.Result()
	defer func() {
		require.NoError(t, res.Body.Close())
	}()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	assert.Equal(t, wantCode, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get(model.HeaderContentType))
	if fixture == "" {
		return
	}
	want, ok := fixtures[fixture]
	require.True(t, ok, "no fixture %q", fixture)
	assert.JSONEq(t, want, string(body))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
