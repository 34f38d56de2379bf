package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-api/api"
	"portfolio-api/internal/config"
	"portfolio-api/pkg/store/mock"
)

const (
	testAdminPassword = "s3cret"
	testSessionSecret = "testsecret"
)

func testConfig() *config.Config {
	return &config.Config{
		Addr:          ":8000",
		Env:           "development",
		DatabaseURL:   "mongodb://localhost:27017",
		DatabaseName:  "portfolio-test",
		AdminPassword: testAdminPassword,
		SessionSecret: testSessionSecret,
		SessionTTL:    time.Hour,
		APITimeout:    15 * time.Second,
	}
}

func testRouter(m *mock.Store) http.Handler {
	return api.SetupRoutes(&api.Deps{
		Cfg:         testConfig(),
		Version:     "test",
		BuildTime:   "unknown",
		Skills:      m,
		Experiences: m,
		Blogs:       m,
		Diag:        m,
	})
}

// doJSON performs one request against handler, JSON-encoding body when it is
// not nil and attaching the given cookies.
func doJSON(t *testing.T, handler http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reader = bytes.NewReader([]byte(s))
		} else {
			b, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("marshal body: %v", err)
			}
			reader = bytes.NewReader(b)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	return w
}

// login performs a successful admin login and returns the session cookie.
func login(t *testing.T, handler http.Handler) *http.Cookie {
	t.Helper()

	w := doJSON(t, handler, http.MethodPost, "/api/admin/login", map[string]string{"password": testAdminPassword})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == "portfolio_session" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("login: no session cookie in response")

	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
}
