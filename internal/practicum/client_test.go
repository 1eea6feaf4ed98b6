package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	errs "homework_bot/internal/errors"
)

func TestGetAPIAnswerSendsAuthAndCursor(t *testing.T) {
	t.Parallel()

	var gotAuth, gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"lesson_1","status":"approved"}],"current_date":1700000000}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", srv.Client())
	body, err := c.GetAPIAnswer(context.Background(), 1690000000)
	if err != nil {
		t.Fatalf("GetAPIAnswer: %v", err)
	}

	if gotAuth != "OAuth secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "OAuth secret")
	}
	if gotFrom != "1690000000" {
		t.Errorf("from_date = %q, want %q", gotFrom, "1690000000")
	}

	m, ok := body.(map[string]any)
	if !ok {
		t.Fatalf("body type = %T, want map", body)
	}
	if m["current_date"] != json.Number("1700000000") {
		t.Errorf("current_date = %#v, want json.Number", m["current_date"])
	}
}

func TestGetAPIAnswerNon200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"not_authenticated"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad", srv.Client()).GetAPIAnswer(context.Background(), 0)
	if errs.KindOf(err) != errs.KindUnexpectedStatus {
		t.Fatalf("kind = %q, want %q (err: %v)", errs.KindOf(err), errs.KindUnexpectedStatus, err)
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) && appErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want %d", appErr.StatusCode, http.StatusUnauthorized)
	}
}

func TestGetAPIAnswerTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	_, err := NewClient(endpoint, "t", &http.Client{Timeout: time.Second}).GetAPIAnswer(context.Background(), 0)
	if errs.KindOf(err) != errs.KindAPIUnavailable {
		t.Fatalf("kind = %q, want %q (err: %v)", errs.KindOf(err), errs.KindAPIUnavailable, err)
	}
}

func TestGetAPIAnswerInvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "t", srv.Client()).GetAPIAnswer(context.Background(), 0)
	if errs.KindOf(err) != errs.KindMalformedResponse {
		t.Fatalf("kind = %q, want %q (err: %v)", errs.KindOf(err), errs.KindMalformedResponse, err)
	}
}

func TestGetAPIAnswerOversizedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"homeworks":[],"current_date":1,"padding":"`))
		_, _ = w.Write([]byte(strings.Repeat("x", 2*maxBodySize)))
		_, _ = w.Write([]byte(`"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "t", srv.Client()).GetAPIAnswer(context.Background(), 0)
	if errs.KindOf(err) != errs.KindMalformedResponse {
		t.Fatalf("kind = %q, want %q (err: %v)", errs.KindOf(err), errs.KindMalformedResponse, err)
	}
}
