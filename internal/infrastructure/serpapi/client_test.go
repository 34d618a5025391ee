package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
)

func TestLookup_MapsFirstShoppingResult(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		if r.URL.Query().Get("tbm") != "shop" {
			t.Errorf("tbm = %q, want shop", r.URL.Query().Get("tbm"))
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("api_key = %q, want test-key", r.URL.Query().Get("api_key"))
		}
		w.Write([]byte(`{"shopping_results":[{"title":"AMD Ryzen 7 7800X3D Processor","price":"$349.00","link":"https://example.com/cpu","thumbnail":"https://example.com/cpu.jpg"}]}`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL("test-key", server.URL)
	listing, err := c.Lookup(context.Background(), "AMD Ryzen 7 7800X3D")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if gotQuery != "amazon.com AMD Ryzen 7 7800X3D" {
		t.Fatalf("query = %q, want amazon.com-prefixed part name", gotQuery)
	}
	if listing.Name != "AMD Ryzen 7 7800X3D Processor" {
		t.Fatalf("Name = %q, want result title", listing.Name)
	}
	if listing.Price != "$349.00" || listing.Link != "https://example.com/cpu" || listing.Image != "https://example.com/cpu.jpg" {
		t.Fatalf("listing fields wrong: %+v", listing)
	}
}

func TestLookup_EmptyResultsYieldNotFoundWithoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"shopping_results":[]}`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL("test-key", server.URL)
	listing, err := c.Lookup(context.Background(), "obscure part")
	if err != nil {
		t.Fatalf("empty result set must not error, got: %v", err)
	}
	want := entity.NotFoundListing("obscure part")
	if listing != want {
		t.Fatalf("Lookup() = %+v, want %+v", listing, want)
	}
}

func TestLookup_MissingFieldsGetFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"shopping_results":[{"title":"","price":"","link":""}]}`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL("test-key", server.URL)
	listing, err := c.Lookup(context.Background(), "some part")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if listing.Name != "some part" {
		t.Fatalf("Name fallback = %q, want part name", listing.Name)
	}
	if listing.Price != "N/A" {
		t.Fatalf("Price fallback = %q, want N/A", listing.Price)
	}
	if listing.Link != entity.LinkNotFound {
		t.Fatalf("Link fallback = %q, want %q", listing.Link, entity.LinkNotFound)
	}
}

func TestLookup_NonOKStatusReturnsErrorAndPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClientWithBaseURL("test-key", server.URL)
	listing, err := c.Lookup(context.Background(), "some part")
	if err == nil {
		t.Fatal("Lookup() on 429 must error")
	}
	if listing != entity.NotFoundListing("some part") {
		t.Fatalf("Lookup() on error = %+v, want Not Found placeholder", listing)
	}
}

func TestLookup_MalformedBodyReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL("test-key", server.URL)
	if _, err := c.Lookup(context.Background(), "some part"); err == nil {
		t.Fatal("Lookup() on malformed body must error")
	}
}
