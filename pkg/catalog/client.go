// Package catalog is the client-side data-access layer for the eyewear
// catalog. It resolves which backend to talk to from the host context,
// performs CRUD against it, and keeps a locally persisted backup so reads
// keep working when no backend is reachable.
package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lensline/eyewear-api/internal/models"
)

const productsPath = "/products"

// Config configures a catalog Client. Host is the host context the endpoint
// resolver classifies; BaseURL, when set, overrides resolution entirely.
type Config struct {
	Host       string
	BaseURL    string
	Backup     *BackupStore
	HTTPClient *http.Client
}

// Client orchestrates the endpoint resolver, the remote executor and the
// local backup store. Reads degrade gracefully to the backup; writes fail
// loud rather than pretend a local-only mutation was durable.
type Client struct {
	cfg    Config
	backup *BackupStore
	http   *http.Client
}

// New creates a catalog Client. The backup store is required; it is the sole
// source of truth whenever the remote path is unavailable.
func New(cfg Config) (*Client, error) {
	if cfg.Backup == nil {
		return nil, fmt.Errorf("catalog client requires a backup store")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{cfg: cfg, backup: cfg.Backup, http: httpClient}, nil
}

// executor resolves the endpoint for this call. Resolution is deliberately
// per-operation so a changed host context is never served a stale decision.
func (c *Client) executor() *Executor {
	return NewExecutor(Resolve(c.cfg.Host, c.cfg.BaseURL), c.http)
}

// ListProducts returns the full catalog. In local-only mode the backup is
// served directly; in remote mode a successful fetch is written through to
// the backup, and any fetch failure falls back to the backup. Once a backup
// (or the sample seed) exists this never fails.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	exec := c.executor()
	if exec.endpoint.Mode == ModeLocalOnly {
		return c.backup.Load(), nil
	}

	products, err := exec.ExecuteList(ctx, productsPath, http.MethodGet, nil)
	if err != nil {
		log.Warn().Err(err).Msg("remote catalog fetch failed, serving backup")
		return c.backup.Load(), nil
	}

	c.backup.Save(products)
	return products, nil
}

// GetProduct returns a single product by id, falling back to a backup scan
// when the remote lookup fails for any reason.
func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	p, err := c.executor().ExecuteOne(ctx, fmt.Sprintf("%s?id=%d", productsPath, id), http.MethodGet, nil)
	if err == nil {
		return p, nil
	}
	log.Debug().Err(err).Int("id", id).Msg("remote product lookup failed, scanning backup")

	for _, backed := range c.backup.Load() {
		if backed.ID == id {
			found := backed
			return &found, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// CreateProduct creates a product remotely. There is no local-only write
// path: a failure is surfaced, wrapped with operation context.
func (c *Client) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	created, err := c.executor().ExecuteOne(ctx, productsPath, http.MethodPost, p)
	if err != nil {
		return nil, fmt.Errorf("Failed to create product: %w", err)
	}
	c.refreshBackup(ctx)
	return created, nil
}

// UpdateProduct replaces a product's full field set remotely.
func (c *Client) UpdateProduct(ctx context.Context, id int, p *models.Product) (*models.Product, error) {
	updated, err := c.executor().ExecuteOne(ctx, fmt.Sprintf("%s?id=%d", productsPath, id), http.MethodPut, p)
	if err != nil {
		return nil, fmt.Errorf("Failed to update product: %w", err)
	}
	c.refreshBackup(ctx)
	return updated, nil
}

// DeleteProduct deletes a product remotely and returns its last snapshot.
func (c *Client) DeleteProduct(ctx context.Context, id int) (*models.Product, error) {
	deleted, err := c.executor().ExecuteOne(ctx, fmt.Sprintf("%s?id=%d", productsPath, id), http.MethodDelete, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to delete product: %w", err)
	}
	c.refreshBackup(ctx)
	return deleted, nil
}

// refreshBackup re-fetches the full remote list and overwrites the backup
// after a successful mutation. Best-effort only: a refresh failure never
// changes the mutation's reported outcome.
func (c *Client) refreshBackup(ctx context.Context) {
	products, err := c.executor().ExecuteList(ctx, productsPath, http.MethodGet, nil)
	if err != nil {
		log.Warn().Err(err).Msg("backup refresh after mutation failed")
		return
	}
	c.backup.Save(products)
}
