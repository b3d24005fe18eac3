package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/model"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/repository"
	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
)

func newAuthFixture(t *testing.T) (*authHandler, repository.UserRepository) {
	t.Helper()

	cfg := testConfig()
	users := repository.NewUserRepository(newTestDB(t))
	authService := service.NewAuthService(users, cfg.SessionSecret, cfg.SessionExpiry, false)

	return NewAuthHandler(authService, cfg), users
}

func postLogin(t *testing.T, h *authHandler, email string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{"email": {email}}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Login(w, r)
	return w
}

func TestLoginInvalidEmail(t *testing.T) {
	h, _ := newAuthFixture(t)

	w := postLogin(t, h, "not-an-email")
	if w.Code != http.StatusOK {
		t.Errorf("got status %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Please provide a valid email address.") {
		t.Errorf("body missing invalid email message")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	h, _ := newAuthFixture(t)

	w := postLogin(t, h, "nobody@example.com")
	if !strings.Contains(w.Body.String(), "User not found. Please contact support to get access.") {
		t.Errorf("body missing unknown user message")
	}
}

func TestLoginUnverifiedUser(t *testing.T) {
	h, users := newAuthFixture(t)
	err := users.Create(&model.User{Email: "alice@example.com", Verified: false, CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	w := postLogin(t, h, "alice@example.com")
	if !strings.Contains(w.Body.String(), "Your email is not verified. Please contact support.") {
		t.Errorf("body missing unverified message")
	}
}

func TestLoginSuccess(t *testing.T) {
	h, users := newAuthFixture(t)
	err := users.Create(&model.User{Email: "alice@example.com", Verified: true, CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	w := postLogin(t, h, "Alice@Example.com")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/dashboard" {
		t.Errorf("got redirect %q, want %q", got, "/dashboard")
	}

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" {
			sessionCookie = c
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("no session cookie set")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h, _ := newAuthFixture(t)

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	h.Logout(w, r)

	if w.Code != http.StatusSeeOther {
		t.Errorf("got status %d, want %d", w.Code, http.StatusSeeOther)
	}
	if got := w.Header().Get("Location"); got != "/login" {
		t.Errorf("got redirect %q, want %q", got, "/login")
	}

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" && c.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie not cleared")
	}
}
