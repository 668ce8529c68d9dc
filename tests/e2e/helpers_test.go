//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/voucher-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/voucher-backend/internal/app"
	"github.com/heartmarshall/voucher-backend/internal/config"
	"github.com/heartmarshall/voucher-backend/internal/metrics"
)

const (
	testSecret = "test-secret-at-least-32-chars-long!!"
	testIssuer = "voucher-identity-test"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application handler on a real PostgreSQL
// container (shared via testhelper) with rate limiting disabled.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  testSecret,
			JWTIssuer:  testIssuer,
			AdminRoles: "admin,support-lead",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Statistics: config.StatisticsConfig{CountedStatus: "CONFIRMED", MaxRangeYears: 10},
		Vouchers:   config.VoucherConfig{MaxExtensionDays: 365},
	}

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, metrics.New(), nil))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// token mints a bearer token the way the identity provider would.
func token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iss":  testIssuer,
		"iat":  now.Unix(),
		"exp":  now.Add(15 * time.Minute).Unix(),
		"role": role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func adminToken(t *testing.T) string {
	t.Helper()
	return token(t, uuid.New(), "admin")
}

// do sends a JSON request and decodes a JSON response into out (if non-nil).
func (ts *testServer) do(t *testing.T, method, path, bearer string, body any, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "%s %s", method, path)
	}
	return resp
}
