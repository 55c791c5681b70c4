package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func remoteExecutor(baseURL string) *Executor {
	return NewExecutor(Endpoint{Mode: ModeRemote, BaseURL: baseURL}, nil)
}

func TestClassifyKnownEnvelopes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		shape envelopeShape
	}{
		{"bare array", `[{"id":1}]`, shapeBareArray},
		{"products field", `{"products":[{"id":1}]}`, shapeProductsField},
		{"data field", `{"success":true,"data":[{"id":1}],"count":1}`, shapeDataField},
		{"bare object", `{"id":1,"name":"Aviator"}`, shapeBareObject},
	}
	for _, tt := range tests {
		shape, payload, err := classify(json.RawMessage(tt.body))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if shape != tt.shape {
			t.Fatalf("%s: expected shape %d, got %d", tt.name, tt.shape, shape)
		}
		if len(payload) == 0 {
			t.Fatalf("%s: empty payload", tt.name)
		}
	}
}

func TestClassifyRejectsUnknownBody(t *testing.T) {
	for _, body := range []string{``, `42`, `"just a string"`, `not json`} {
		if _, _, err := classify(json.RawMessage(body)); !errors.Is(err, ErrUnexpectedEnvelope) {
			t.Fatalf("body %q: expected ErrUnexpectedEnvelope, got %v", body, err)
		}
	}
}

func TestExecuteListUnwrapsEnvelopeVariants(t *testing.T) {
	bodies := []string{
		`[{"id":1,"name":"Aviator Classic"}]`,
		`{"products":[{"id":1,"name":"Aviator Classic"}]}`,
		`{"success":true,"data":[{"id":1,"name":"Aviator Classic"}],"count":1}`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		}))
		products, err := remoteExecutor(srv.URL).ExecuteList(context.Background(), "/products", http.MethodGet, nil)
		srv.Close()
		if err != nil {
			t.Fatalf("body %s: unexpected error: %v", body, err)
		}
		if len(products) != 1 || products[0].Name != "Aviator Classic" {
			t.Fatalf("body %s: wrong normalization result: %+v", body, products)
		}
	}
}

func TestExecuteListRejectsSingleObjectPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":1}}`))
	}))
	defer srv.Close()

	if _, err := remoteExecutor(srv.URL).ExecuteList(context.Background(), "/products", http.MethodGet, nil); !errors.Is(err, ErrUnexpectedEnvelope) {
		t.Fatalf("expected ErrUnexpectedEnvelope, got %v", err)
	}
}

func TestExecuteOneUnwrapsDataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":7,"name":"Clubmaster Heritage"}}`))
	}))
	defer srv.Close()

	p, err := remoteExecutor(srv.URL).ExecuteOne(context.Background(), "/products?id=7", http.MethodGet, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 7 || p.Name != "Clubmaster Heritage" {
		t.Fatalf("wrong product: %+v", p)
	}
}

func TestNonSuccessStatusBecomesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"Product not found"}`))
	}))
	defer srv.Close()

	_, err := remoteExecutor(srv.URL).ExecuteOne(context.Background(), "/products?id=99", http.MethodGet, nil)
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Status != http.StatusNotFound || remoteErr.Message != "Product not found" {
		t.Fatalf("wrong RemoteError: %+v", remoteErr)
	}
}

func TestUnparsableErrorBodyFallsBackToStatusLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	_, err := remoteExecutor(srv.URL).ExecuteList(context.Background(), "/products", http.MethodGet, nil)
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remoteErr.Message != "HTTP 500: Internal Server Error" {
		t.Fatalf("expected generic status message, got %q", remoteErr.Message)
	}
}

func TestConnectionFailureBecomesNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	_, err := remoteExecutor(srv.URL).ExecuteList(context.Background(), "/products", http.MethodGet, nil)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestLocalOnlyModeFailsBeforeNetworkIO(t *testing.T) {
	exec := NewExecutor(Endpoint{Mode: ModeLocalOnly}, nil)
	if _, err := exec.ExecuteList(context.Background(), "/products", http.MethodGet, nil); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("expected ErrNoBackend, got %v", err)
	}
}

func TestNonGETRequestsCarryJSONBody(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"id":1,"name":"Test"}}`))
	}))
	defer srv.Close()

	_, err := remoteExecutor(srv.URL).ExecuteOne(context.Background(), "/products", http.MethodPost, map[string]any{"name": "Test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", gotContentType)
	}
	if gotBody != `{"name":"Test"}` {
		t.Fatalf("unexpected request body: %q", gotBody)
	}
}
