package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" || ua == "Go-http-client/1.1" {
			t.Errorf("request sent default User-Agent %q", ua)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	body, err := NewFetcher().GetBytes(server.URL)
	if err != nil {
		t.Fatalf("GetBytes() error = %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("GetBytes() = %q, want %q", body, `{"ok":true}`)
	}
}

func TestGetBytes_NonOKStatusIsTerminal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewFetcher().GetBytes(server.URL); err == nil {
		t.Fatal("GetBytes() error = nil, want failure for status 404")
	}
}

func TestGetHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="basic">hi</div></body></html>`))
	}))
	defer server.Close()

	doc, err := NewFetcher().GetHTML(server.URL)
	if err != nil {
		t.Fatalf("GetHTML() error = %v", err)
	}
	if got := doc.Find(".basic").Text(); got != "hi" {
		t.Errorf("doc.Find(.basic) = %q, want %q", got, "hi")
	}
}
