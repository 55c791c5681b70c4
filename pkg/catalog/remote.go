package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lensline/eyewear-api/internal/models"
)

// maxResponseSize is the maximum allowed response body size (10MB).
const maxResponseSize = 10 * 1024 * 1024

// Executor issues single-attempt HTTP requests against a resolved endpoint
// and normalizes the heterogeneous response envelopes into plain payloads.
// It enforces no timeout of its own; cancellation comes from the caller's
// context and the transport's defaults.
type Executor struct {
	endpoint   Endpoint
	httpClient *http.Client
}

// NewExecutor creates an Executor for the given endpoint. A nil httpClient
// falls back to a default client.
func NewExecutor(endpoint Endpoint, httpClient *http.Client) *Executor {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Executor{endpoint: endpoint, httpClient: httpClient}
}

// do performs exactly one HTTP attempt and returns the raw response body.
// Failures without a received response are NetworkError; received non-2xx
// responses are RemoteError.
func (e *Executor) do(ctx context.Context, path, method string, body any) (json.RawMessage, error) {
	if e.endpoint.Mode == ModeLocalOnly {
		return nil, ErrNoBackend
	}

	var reader io.Reader
	if method != http.MethodGet && body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.endpoint.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{
			Status:  resp.StatusCode,
			Message: errorMessage(respBody, resp),
		}
	}

	return respBody, nil
}

// errorMessage extracts a human-readable message from an error body, falling
// back to a generic status line.
func errorMessage(body []byte, resp *http.Response) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// envelopeShape tags which of the known response envelopes a body uses.
type envelopeShape int

const (
	shapeBareArray envelopeShape = iota
	shapeProductsField
	shapeDataField
	shapeBareObject
)

// classify identifies the envelope shape and unwraps its payload. Rather
// than guessing shapes sequentially, unknown bodies are a detectable error.
func classify(raw json.RawMessage) (envelopeShape, json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, nil, fmt.Errorf("%w: empty body", ErrUnexpectedEnvelope)
	}

	switch trimmed[0] {
	case '[':
		return shapeBareArray, trimmed, nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return 0, nil, fmt.Errorf("%w: %v", ErrUnexpectedEnvelope, err)
		}
		if payload, ok := fields["products"]; ok {
			return shapeProductsField, payload, nil
		}
		if payload, ok := fields["data"]; ok {
			return shapeDataField, payload, nil
		}
		return shapeBareObject, trimmed, nil
	default:
		return 0, nil, fmt.Errorf("%w: body is neither object nor array", ErrUnexpectedEnvelope)
	}
}

// ExecuteList performs a request whose payload must normalize to a product
// collection.
func (e *Executor) ExecuteList(ctx context.Context, path, method string, body any) ([]models.Product, error) {
	raw, err := e.do(ctx, path, method, body)
	if err != nil {
		return nil, err
	}

	_, payload, err := classify(raw)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, fmt.Errorf("%w: expected a product collection", ErrUnexpectedEnvelope)
	}
	return products, nil
}

// ExecuteOne performs a request whose payload must normalize to a single
// product.
func (e *Executor) ExecuteOne(ctx context.Context, path, method string, body any) (*models.Product, error) {
	raw, err := e.do(ctx, path, method, body)
	if err != nil {
		return nil, err
	}

	_, payload, err := classify(raw)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		return nil, fmt.Errorf("%w: expected a single product", ErrUnexpectedEnvelope)
	}
	return &product, nil
}
