package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	errs "github.com/matzehuels/mekko/pkg/errors"
)

func testClient() *Client {
	c := NewClient()
	c.Delay = time.Millisecond
	return c
}

func TestIsURL(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/data.csv": true,
		"http://localhost/x.json":      true,
		"data/survey.csv":              false,
		"ftp://example.com/data.csv":   false,
		"":                             false,
	}
	for in, want := range tests {
		if got := IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFetch(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		w.Write([]byte("Gender,Treatment\nMale,Yes\n"))
	}))
	defer srv.Close()

	data, err := testClient().Fetch(context.Background(), srv.URL+"/survey.csv")
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if !strings.HasPrefix(string(data), "Gender,Treatment") {
		t.Errorf("Fetch() = %q", data)
	}
	if !strings.HasPrefix(agent, "mekko ") {
		t.Errorf("User-Agent = %q", agent)
	}
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	data, err := testClient().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if string(data) != "ok" || calls.Load() != 3 {
		t.Errorf("data=%q calls=%d", data, calls.Load())
	}
}

func TestFetchErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/missing.csv":
			w.WriteHeader(http.StatusNotFound)
		case "/forbidden.csv":
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()
	c := testClient()
	ctx := context.Background()

	if _, err := c.Fetch(ctx, srv.URL+"/missing.csv"); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("404 error = %v, want FILE_NOT_FOUND", err)
	}

	calls.Store(0)
	if _, err := c.Fetch(ctx, srv.URL+"/forbidden.csv"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("403 error = %v, want INVALID_INPUT", err)
	}
	if calls.Load() != 1 {
		t.Errorf("403 should not be retried, got %d calls", calls.Load())
	}

	calls.Store(0)
	if _, err := c.Fetch(ctx, srv.URL+"/broken.csv"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("500 error = %v, want INVALID_INPUT", err)
	}
	if calls.Load() != 3 {
		t.Errorf("500 should be retried 3 times, got %d calls", calls.Load())
	}
}
