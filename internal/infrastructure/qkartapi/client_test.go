package qkartapi_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prashant-tajane/qkart-frontend/internal/domain"
	"github.com/prashant-tajane/qkart-frontend/internal/infrastructure/qkartapi"
)

func newTestClient(t *testing.T, handler http.Handler) (*qkartapi.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return qkartapi.NewClient(srv.URL, 2*time.Second, slog.Default()), srv
}

var fixtureCatalog = `[
	{"_id":"p1","name":"iPhone XR","category":"Phones","cost":100,"rating":4,"image":"https://example.com/p1.jpg"},
	{"_id":"p2","name":"Basketball","category":"Sports","cost":50,"rating":5,"image":"https://example.com/p2.jpg"}
]`

func TestSearchProducts_EmptyQueryHitsProducts(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(fixtureCatalog))
	}))

	products, err := client.SearchProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/products" {
		t.Errorf("path = %q, want /products", gotPath)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].ID != "p1" || products[0].Cost != 100 {
		t.Errorf("unexpected first product: %+v", products[0])
	}
}

func TestSearchProducts_QueryUsesSearchEndpoint(t *testing.T) {
	var gotPath, gotValue string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotValue = r.URL.Query().Get("value")
		_, _ = w.Write([]byte(`[{"_id":"p1","name":"iPhone XR","category":"Phones","cost":100,"rating":4,"image":""}]`))
	}))

	products, err := client.SearchProducts(context.Background(), "phone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/products/search" {
		t.Errorf("path = %q, want /products/search", gotPath)
	}
	if gotValue != "phone" {
		t.Errorf("value = %q, want phone", gotValue)
	}
	if len(products) != 1 || products[0].Name != "iPhone XR" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestFetchCart_SendsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"productId":"p1","qty":2}]`))
	}))

	entries, err := client.FetchCart(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if len(entries) != 1 || entries[0].ProductID != "p1" || entries[0].Qty != 2 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestFetchCart_NoToken_NoNetworkCall(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := client.FetchCart(context.Background(), "")
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
	if called {
		t.Error("no network call should be made without a token")
	}
}

func TestUpdateCart_ReturnsServerCart(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		_, _ = w.Write([]byte(`[{"productId":"p1","qty":2}]`))
	}))

	entries, err := client.UpdateCart(context.Background(), "tok", "p1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotBody, `"productId":"p1"`) || !strings.Contains(gotBody, `"qty":2`) {
		t.Errorf("unexpected request body: %s", gotBody)
	}
	if len(entries) != 1 || entries[0].Qty != 2 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestUpdateCart_InvalidProduct_SurfacesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Product doesn't exist"}`))
	}))

	_, err := client.UpdateCart(context.Background(), "tok", "nope", 1)
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *domain.APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "Product doesn't exist" {
		t.Errorf("message = %q, want server message verbatim", apiErr.Message)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Username is already taken"}`))
	}))

	err := client.Register(context.Background(), "alice1", "secret1")
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *domain.APIError, got %v", err)
	}
	if apiErr.Message != "Username is already taken" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"token":"jwt-abc"}`))
	}))

	token, err := client.Login(context.Background(), "alice1", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("token = %q, want jwt-abc", token)
	}
}

func TestDo_NetworkError_IsBackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := qkartapi.NewClient(srv.URL, time.Second, slog.Default())

	_, err := client.SearchProducts(context.Background(), "")
	if !errors.Is(err, domain.ErrBackendUnreachable) {
		t.Fatalf("want ErrBackendUnreachable, got %v", err)
	}
}

func TestDo_ServerError_IsGenericFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.SearchProducts(context.Background(), "")
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		t.Errorf("5xx must not map to APIError, got %v", apiErr)
	}
	if errors.Is(err, domain.ErrBackendUnreachable) {
		t.Error("5xx must not map to ErrBackendUnreachable")
	}
}

func TestDo_AttachesRequestID(t *testing.T) {
	var gotID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	}))

	if _, err := client.SearchProducts(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID == "" {
		t.Error("expected X-Request-ID header on outbound call")
	}
}
