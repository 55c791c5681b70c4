package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lensline/eyewear-api/internal/models"
	"github.com/lensline/eyewear-api/internal/utils"
)

// ProductStore is the data-access surface the product handler needs.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	ByCategory(ctx context.Context, category string) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Update(ctx context.Context, id int, p *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int) (*models.Product, error)
}

// ProductHandler serves the single products resource path, dispatching purely
// on the HTTP verb.
type ProductHandler struct {
	store ProductStore
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// Handle routes a request by verb.
func (h *ProductHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		h.get(c)
	case http.MethodPost:
		h.create(c)
	case http.MethodPut:
		h.update(c)
	case http.MethodDelete:
		h.delete(c)
	case http.MethodOptions:
		c.JSON(http.StatusOK, gin.H{})
	default:
		utils.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *ProductHandler) get(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("id"); raw != "" {
		// An unparsable id can never match a row, so it falls through to 404
		// the same way an unknown id does.
		id, _ := strconv.Atoi(raw)
		p, err := h.store.GetByID(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			utils.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		utils.Success(c, http.StatusOK, p, "")
		return
	}

	if query := c.Query("search"); query != "" {
		products, err := h.store.Search(ctx, query)
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		utils.SearchResults(c, products, len(products), query)
		return
	}

	if category := c.Query("category"); category != "" {
		products, err := h.store.ByCategory(ctx, category)
		if err != nil {
			utils.Error(c, http.StatusInternalServerError, err.Error())
			return
		}
		utils.CategoryResults(c, products, len(products), category)
		return
	}

	products, err := h.store.List(ctx)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.Collection(c, products, len(products))
}

func (h *ProductHandler) create(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.store.Create(c.Request.Context(), &p)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	log.Info().Int("id", created.ID).Str("name", created.Name).Msg("product created")
	utils.Success(c, http.StatusCreated, created, "Product created successfully")
}

func (h *ProductHandler) update(c *gin.Context) {
	// A missing or unparsable id matches no row and reports 404 below; the
	// handler does not distinguish it from an unknown id.
	id, _ := strconv.Atoi(c.Query("id"))

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Invalid request body: "+err.Error())
		return
	}

	// Full-row replace: fields omitted from the request body overwrite the
	// stored values with their zero values. This is the documented contract,
	// not a partial patch.
	updated, err := h.store.Update(c.Request.Context(), id, &p)
	if errors.Is(err, sql.ErrNoRows) {
		utils.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	log.Info().Int("id", updated.ID).Msg("product updated")
	utils.Success(c, http.StatusOK, updated, "Product updated successfully")
}

func (h *ProductHandler) delete(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		utils.Error(c, http.StatusBadRequest, "Product ID is required")
		return
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Product ID is required")
		return
	}

	deleted, err := h.store.Delete(c.Request.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		utils.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	log.Info().Int("id", id).Msg("product deleted")
	utils.Success(c, http.StatusOK, deleted, "Product deleted successfully")
}
