package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/kjramos5310/inventario-console/pkg/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	client, err := NewClient("http://api.test", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestDoSetsJSONHeaders(t *testing.T) {
	var captured http.Header
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = req.Header.Clone()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`[]`)),
			Header:     http.Header{},
		}, nil
	})

	if _, err := client.Do(context.Background(), http.MethodGet, "/categoria", nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if captured.Get("Content-Type") != "application/json" {
		t.Fatalf("content type header missing, got %q", captured.Get("Content-Type"))
	}
	if captured.Get("X-Request-Id") == "" {
		t.Fatalf("request id header missing")
	}
}

func TestDoNonSuccessCarriesStatusAndBody(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader("categoria 7 no existe")),
			Header:     http.Header{},
		}, nil
	})

	_, err := client.Do(context.Background(), http.MethodGet, "/categoria/7", nil)
	if err == nil {
		t.Fatalf("expected error for 404")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError in chain, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound {
		t.Fatalf("unexpected status %d", apiErr.Status)
	}
	if apiErr.Body != "categoria 7 no existe" {
		t.Fatalf("unexpected body %q", apiErr.Body)
	}
	if !pkgerrors.Is(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not-found code, got %v", err)
	}
}

func TestDoEmptyBodyResolvesToEmptyObject(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("")),
			Header:     http.Header{},
		}, nil
	})

	raw, err := client.Do(context.Background(), http.MethodDelete, "/categoria/7", nil)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if string(raw) != `{}` {
		t.Fatalf("expected empty object, got %s", raw)
	}
}

func TestDoInvalidJSONFails(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html>nope</html>")),
			Header:     http.Header{},
		}, nil
	})

	if _, err := client.Do(context.Background(), http.MethodGet, "/proveedor", nil); err == nil {
		t.Fatalf("expected error for non-json body")
	}
}

func TestDoTransportFailureIsDependencyError(t *testing.T) {
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := client.Do(context.Background(), http.MethodGet, "/usuario", nil)
	if !pkgerrors.Is(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency code, got %v", err)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}
