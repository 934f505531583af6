package bitrix_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rating-service/internal/bitrix"
)

func TestNewRequiresSource(t *testing.T) {
	if _, err := bitrix.New(bitrix.Config{}); !errors.Is(err, bitrix.ErrNoSource) {
		t.Fatalf("err = %v, want ErrNoSource", err)
	}
	if _, err := bitrix.New(bitrix.Config{WebhookURL: "https://x/rest/1/t"}); !errors.Is(err, bitrix.ErrNoSource) {
		t.Fatalf("webhook without file id: err = %v, want ErrNoSource", err)
	}
}

func TestFetchDirectURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("auth header = %q", got)
		}
		_, _ = w.Write([]byte("workbook-bytes"))
	}))
	defer srv.Close()

	c, err := bitrix.New(bitrix.Config{XLSXURL: srv.URL, AuthHeader: "Bearer token"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.FetchWorkbook(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "workbook-bytes" {
		t.Fatalf("body = %q", b)
	}
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c, _ := bitrix.New(bitrix.Config{XLSXURL: srv.URL})
	_, err := c.FetchWorkbook(context.Background())

	var se *bitrix.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Status != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", se.Status)
	}
}

func TestFetchViaWebhook(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/rest/1/secret/disk.file.get.json", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "123" {
			t.Errorf("id = %q", got)
		}
		fmt.Fprintf(w, `{"result":{"ID":"123","DOWNLOAD_URL":%q}}`, srv.URL+"/download")
	})
	mux.HandleFunc("/download", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("resolved-bytes"))
	})

	c, err := bitrix.New(bitrix.Config{WebhookURL: srv.URL + "/rest/1/secret", FileID: "123"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.FetchWorkbook(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "resolved-bytes" {
		t.Fatalf("body = %q", b)
	}
}
