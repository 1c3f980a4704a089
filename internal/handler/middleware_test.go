package handler

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func forgeToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestProtectedRouteRejectsBadTokens(t *testing.T) {
	r := newTestRouter(t)
	registerAndLogin(t, r, "a@x.com", "pw1")

	cases := map[string]string{
		"malformed":   "garbage",
		"expired":     forgeToken(t, testSecret, "a@x.com", time.Now().UTC().Add(-time.Minute)),
		"foreign key": forgeToken(t, "some-other-secret", "a@x.com", time.Now().UTC().Add(time.Hour)),
		// Verifies fine, but the subject was never registered. Must be
		// indistinguishable from a bad token.
		"vanished user": forgeToken(t, testSecret, "ghost@x.com", time.Now().UTC().Add(time.Hour)),
	}

	var responses []*httptest.ResponseRecorder
	for name, token := range cases {
		w := doJSON(r, http.MethodGet, "/groups", nil, token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d: %s", name, w.Code, w.Body.String())
		}
		responses = append(responses, w)
	}

	// All failures share one wire shape.
	first := responses[0]
	for _, w := range responses[1:] {
		if w.Body.String() != first.Body.String() {
			t.Fatalf("bodies differ: %q vs %q", first.Body.String(), w.Body.String())
		}
		if !reflect.DeepEqual(w.Result().Header, first.Result().Header) {
			t.Fatalf("headers differ: %v vs %v", first.Result().Header, w.Result().Header)
		}
	}
}

func TestProtectedRouteRejectsMissingScheme(t *testing.T) {
	r := newTestRouter(t)
	_, token := registerAndLogin(t, r, "a@x.com", "pw1")

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic " + token, token} {
		req := httptest.NewRequest(http.MethodGet, "/groups", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestValidTokenPasses(t *testing.T) {
	r := newTestRouter(t)
	_, token := registerAndLogin(t, r, "a@x.com", "pw1")

	w := doJSON(r, http.MethodGet, "/groups", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty group list, got %s", w.Body.String())
	}
}
