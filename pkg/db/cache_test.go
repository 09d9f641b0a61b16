package db

import (
	"bytes"
	"testing"
	"time"
)

func TestStoreAndReadCachedResponse(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://dict.youdao.com/result?word=good&lang=en"
	body := []byte("<html>fixture</html>")

	if err := db.StoreResponse(url, body); err != nil {
		t.Fatalf("StoreResponse() error = %v", err)
	}

	got, hit, err := db.CachedResponse(url, time.Hour)
	if err != nil {
		t.Fatalf("CachedResponse() error = %v", err)
	}
	if !hit {
		t.Fatal("CachedResponse() hit = false, want true")
	}
	if !bytes.Equal(got, body) {
		t.Errorf("CachedResponse() body = %q, want %q", got, body)
	}
}

func TestCachedResponse_MissForUnknownURL(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, hit, err := db.CachedResponse("https://dict.youdao.com/result?word=x&lang=en", time.Hour)
	if err != nil {
		t.Fatalf("CachedResponse() error = %v", err)
	}
	if hit {
		t.Error("CachedResponse() hit = true, want false for unknown URL")
	}
}

func TestCachedResponse_ZeroMaxAgeBypasses(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://dict.youdao.com/suggest?q=goo&num=10&doctype=json"
	if err := db.StoreResponse(url, []byte("{}")); err != nil {
		t.Fatalf("StoreResponse() error = %v", err)
	}

	_, hit, err := db.CachedResponse(url, 0)
	if err != nil {
		t.Fatalf("CachedResponse() error = %v", err)
	}
	if hit {
		t.Error("CachedResponse() hit = true, want false with maxAge 0")
	}
}

func TestStoreResponse_UpsertReplacesBody(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://dict.youdao.com/result?word=good&lang=en"
	if err := db.StoreResponse(url, []byte("old")); err != nil {
		t.Fatalf("StoreResponse() error = %v", err)
	}
	if err := db.StoreResponse(url, []byte("new")); err != nil {
		t.Fatalf("StoreResponse() error = %v", err)
	}

	got, hit, err := db.CachedResponse(url, time.Hour)
	if err != nil {
		t.Fatalf("CachedResponse() error = %v", err)
	}
	if !hit {
		t.Fatal("CachedResponse() hit = false, want true")
	}
	if string(got) != "new" {
		t.Errorf("CachedResponse() body = %q, want %q", got, "new")
	}
}
