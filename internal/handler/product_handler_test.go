package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lensline/eyewear-api/internal/models"
)

// stubStore is an in-memory ProductStore recording which operations ran.
type stubStore struct {
	products []models.Product
	calls    []string
}

func (s *stubStore) find(id int) (int, *models.Product) {
	for i := range s.products {
		if s.products[i].ID == id {
			return i, &s.products[i]
		}
	}
	return -1, nil
}

func (s *stubStore) List(ctx context.Context) ([]models.Product, error) {
	s.calls = append(s.calls, "list")
	return s.products, nil
}

func (s *stubStore) GetByID(ctx context.Context, id int) (*models.Product, error) {
	s.calls = append(s.calls, "get")
	if _, p := s.find(id); p != nil {
		return p, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubStore) Search(ctx context.Context, query string) ([]models.Product, error) {
	s.calls = append(s.calls, "search")
	q := strings.ToLower(query)
	out := []models.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubStore) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	s.calls = append(s.calls, "category")
	q := strings.ToLower(category)
	out := []models.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubStore) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	s.calls = append(s.calls, "create")
	created := *p
	created.ID = len(s.products) + 1
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.products = append(s.products, created)
	return &created, nil
}

func (s *stubStore) Update(ctx context.Context, id int, p *models.Product) (*models.Product, error) {
	s.calls = append(s.calls, "update")
	i, existing := s.find(id)
	if existing == nil {
		return nil, sql.ErrNoRows
	}
	updated := *p
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.products[i] = updated
	return &updated, nil
}

func (s *stubStore) Delete(ctx context.Context, id int) (*models.Product, error) {
	s.calls = append(s.calls, "delete")
	i, existing := s.find(id)
	if existing == nil {
		return nil, sql.ErrNoRows
	}
	snapshot := *existing
	s.products = append(s.products[:i], s.products[i+1:]...)
	return &snapshot, nil
}

type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Count    *int            `json:"count"`
	Query    string          `json:"query"`
	Category string          `json:"category"`
	Message  string          `json:"message"`
	Error    string          `json:"error"`
}

func serve(t *testing.T, store *stubStore, method, target string, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Any("/api/products", NewProductHandler(store).Handle)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v (%s)", err, rec.Body.String())
	}
	return rec, env
}

func catalogFixture() *stubStore {
	return &stubStore{products: []models.Product{
		{ID: 2, Name: "Aviator Classic", Category: "Sunglasses", Brand: "SkyLine"},
		{ID: 1, Name: "Round Reader", Category: "Sunglasses - Aviator", Brand: "PageTurner"},
	}}
}

func TestGetAllReturnsCollectionWithCount(t *testing.T) {
	rec, env := serve(t, catalogFixture(), http.MethodGet, "/api/products", "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Count == nil || *env.Count != 2 {
		t.Fatalf("expected count=2, got %v", env.Count)
	}
}

func TestGetByUnknownIDReturns404(t *testing.T) {
	rec, env := serve(t, catalogFixture(), http.MethodGet, "/api/products?id=42", "")
	if rec.Code != http.StatusNotFound || env.Success {
		t.Fatalf("expected 404 failure, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Error != "Product not found" {
		t.Fatalf("unexpected error message: %q", env.Error)
	}
}

func TestSearchMatchesNameAndCategoryNewestFirst(t *testing.T) {
	rec, env := serve(t, catalogFixture(), http.MethodGet, "/api/products?search=aviator", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if env.Query != "aviator" {
		t.Fatalf("expected echoed query, got %q", env.Query)
	}
	var products []models.Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		t.Fatalf("data is not a product list: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected name and category matches, got %d results", len(products))
	}
	if products[0].ID != 2 || products[1].ID != 1 {
		t.Fatalf("expected store order preserved (newest first), got %+v", products)
	}
}

func TestCategoryFilterEchoesCategory(t *testing.T) {
	_, env := serve(t, catalogFixture(), http.MethodGet, "/api/products?category=sunglasses", "")
	if env.Category != "sunglasses" {
		t.Fatalf("expected echoed category, got %q", env.Category)
	}
	if env.Count == nil || *env.Count != 2 {
		t.Fatalf("expected 2 matches, got %v", env.Count)
	}
}

func TestCreateReturns201WithAssignedID(t *testing.T) {
	rec, env := serve(t, catalogFixture(), http.MethodPost, "/api/products", `{"name":"Cat Eye Luxe","price":149}`)
	if rec.Code != http.StatusCreated || !env.Success {
		t.Fatalf("expected 201 success, got %d: %s", rec.Code, rec.Body.String())
	}
	var p models.Product
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("data is not a product: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected generated id in response")
	}
	if env.Message != "Product created successfully" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestUpdateMissingRowReturns404(t *testing.T) {
	rec, env := serve(t, catalogFixture(), http.MethodPut, "/api/products?id=7", `{"name":"Ghost"}`)
	if rec.Code != http.StatusNotFound || env.Success {
		t.Fatalf("expected 404 failure, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateIsFullReplace(t *testing.T) {
	store := catalogFixture()
	_, env := serve(t, store, http.MethodPut, "/api/products?id=2", `{"name":"Renamed"}`)
	if !env.Success {
		t.Fatalf("expected success, got %s", env.Error)
	}
	var p models.Product
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("data is not a product: %v", err)
	}
	// Omitted fields are overwritten, not preserved.
	if p.Brand != "" || p.Category != "" {
		t.Fatalf("expected omitted fields cleared by full replace, got %+v", p)
	}
}

func TestDeleteWithoutIDFailsBeforeStore(t *testing.T) {
	store := catalogFixture()
	rec, env := serve(t, store, http.MethodDelete, "/api/products", "")
	if rec.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("expected 400 failure, got %d", rec.Code)
	}
	if len(store.calls) != 0 {
		t.Fatalf("store must not be touched on missing id, got calls %v", store.calls)
	}
}

func TestDeleteUnknownIDReturns404AndKeepsTable(t *testing.T) {
	store := catalogFixture()
	rec, _ := serve(t, store, http.MethodDelete, "/api/products?id=42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if len(store.products) != 2 {
		t.Fatalf("delete of unknown id must not alter the table, got %d rows", len(store.products))
	}
}

func TestDeleteReturnsSnapshot(t *testing.T) {
	store := catalogFixture()
	_, env := serve(t, store, http.MethodDelete, "/api/products?id=2", "")
	var p models.Product
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("data is not a product: %v", err)
	}
	if p.Name != "Aviator Classic" {
		t.Fatalf("expected deleted row snapshot, got %+v", p)
	}
	if len(store.products) != 1 {
		t.Fatalf("expected row removed, got %d rows", len(store.products))
	}
}

func TestUnsupportedVerbReturns405(t *testing.T) {
	rec, env := serve(t, catalogFixture(), http.MethodPatch, "/api/products", "")
	if rec.Code != http.StatusMethodNotAllowed || env.Success {
		t.Fatalf("expected 405 failure, got %d", rec.Code)
	}
}

func TestOptionsReturnsEmptyObject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Any("/api/products", NewProductHandler(catalogFixture()).Handle)

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "{}" {
		t.Fatalf("expected empty object body, got %q", rec.Body.String())
	}
}
