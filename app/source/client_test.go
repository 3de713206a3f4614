package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient() *Client {
	return NewClient(5*time.Second, "podfetch-test/1.0")
}

func TestFetchFeedFirstSourceWins(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("primary feed"))
	}))
	defer primary.Close()
	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("secondary feed"))
	}))
	defer secondary.Close()

	data, err := newTestClient().FetchFeed(context.Background(), []string{primary.URL, secondary.URL})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != "primary feed" {
		t.Errorf("Expected primary feed body, got: %q", data)
	}
}

func TestFetchFeedFallsBackOnFailure(t *testing.T) {
	var userAgent string
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer failing.Close()
	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Write([]byte("fallback feed"))
	}))
	defer working.Close()

	data, err := newTestClient().FetchFeed(context.Background(), []string{failing.URL, working.URL})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != "fallback feed" {
		t.Errorf("Expected fallback feed body, got: %q", data)
	}
	if userAgent != "podfetch-test/1.0" {
		t.Errorf("Expected configured user agent, got: %q", userAgent)
	}
}

func TestFetchFeedAllSourcesFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer failing.Close()

	_, err := newTestClient().FetchFeed(context.Background(), []string{failing.URL, "http://127.0.0.1:1/feed"})
	if err == nil {
		t.Fatal("Expected error when all sources fail")
	}
}

func TestFetchImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/art.png" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	client := newTestClient()

	data, err := client.FetchImage(context.Background(), server.URL+"/art.png")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Expected image bytes, got: %q", data)
	}

	if _, err := client.FetchImage(context.Background(), server.URL+"/missing.png"); err == nil {
		t.Error("Expected error for missing image")
	}
}
