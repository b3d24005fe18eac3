package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/thys123-dev/VAIB-Goal-Tracker/internal/service"
)

func postEmail(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	emailService := service.NewEmailService("", "goals@example.com", "http://localhost:8090", "Goal Tracker", true)
	h := NewEmailHandler(emailService)

	r := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Send(w, r)
	return w
}

func TestSendEmailInvalidBody(t *testing.T) {
	w := postEmail(t, "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSendEmailInvalidRecipient(t *testing.T) {
	w := postEmail(t, `{"to":"not-an-email","subject":"Hello","text":"Hi"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "Invalid recipient address") {
		t.Errorf("body %q missing recipient error", w.Body.String())
	}
}

func TestSendEmailMissingSubject(t *testing.T) {
	w := postEmail(t, `{"to":"alice@example.com","text":"Hi"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "Subject is required") {
		t.Errorf("body %q missing subject error", w.Body.String())
	}
}

func TestSendEmail(t *testing.T) {
	w := postEmail(t, `{"to":"alice@example.com","subject":"Hello","text":"Hi"}`)
	if w.Code != http.StatusOK {
		t.Errorf("got status %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"success":true`) {
		t.Errorf("body %q missing success", w.Body.String())
	}
}
