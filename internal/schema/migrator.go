package schema

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/lensline/eyewear-api/internal/utils"
)

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    price NUMERIC(10,2) NOT NULL DEFAULT 0,
    category TEXT NOT NULL DEFAULT '',
    brand TEXT NOT NULL DEFAULT '',
    image TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const createCommentsTable = `
CREATE TABLE IF NOT EXISTS comments (
    id SERIAL PRIMARY KEY,
    comment TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// productColumns lists every column added after the original products table
// shape. Each entry becomes its own ADD COLUMN IF NOT EXISTS statement, so
// the set is order-independent and a single failure cannot block the rest.
var productColumns = []struct {
	Name       string
	Definition string
}{
	{"original_price", "NUMERIC(10,2) NOT NULL DEFAULT 0"},
	{"discount", "INTEGER NOT NULL DEFAULT 0"},
	{"material", "TEXT NOT NULL DEFAULT ''"},
	{"shape", "TEXT NOT NULL DEFAULT ''"},
	{"color", "TEXT NOT NULL DEFAULT ''"},
	{"size", "TEXT NOT NULL DEFAULT ''"},
	{"sizes", "TEXT[] NOT NULL DEFAULT '{}'"},
	{"framecolor", "TEXT NOT NULL DEFAULT ''"},
	{"style", "TEXT NOT NULL DEFAULT ''"},
	{"rim", "TEXT NOT NULL DEFAULT ''"},
	{"gender", "TEXT NOT NULL DEFAULT ''"},
	{"type", "TEXT NOT NULL DEFAULT ''"},
	{"lenstypes", "TEXT[] NOT NULL DEFAULT '{}'"},
	{"gallery", "TEXT[] NOT NULL DEFAULT '{}'"},
	{"colorimages", "JSONB NOT NULL DEFAULT '{}'"},
	{"features", "TEXT[] NOT NULL DEFAULT '{}'"},
	{"specifications", "TEXT NOT NULL DEFAULT ''"},
	{"status", "TEXT NOT NULL DEFAULT 'active'"},
	{"featured", "BOOLEAN NOT NULL DEFAULT FALSE"},
	{"bestseller", "BOOLEAN NOT NULL DEFAULT FALSE"},
}

// Migrator idempotently provisions the products and comments tables. It is
// safe to run on every request and under concurrent cold starts: every
// statement is an IF NOT EXISTS no-op once satisfied.
type Migrator struct {
	db *sqlx.DB
}

// NewMigrator creates a new Migrator.
func NewMigrator(db *sqlx.DB) *Migrator {
	return &Migrator{db: db}
}

// Ensure creates both tables and adds every late column. Table creation
// failures are returned; column additions are isolated from each other, their
// failures logged and swallowed so one already-satisfied column can never
// abort the remaining additions.
func (m *Migrator) Ensure(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createProductsTable); err != nil {
		return fmt.Errorf("failed to ensure products table: %w", err)
	}
	if _, err := m.db.ExecContext(ctx, createCommentsTable); err != nil {
		return fmt.Errorf("failed to ensure comments table: %w", err)
	}

	for _, col := range productColumns {
		// Column names and definitions are compile-time constants, never
		// request input.
		stmt := fmt.Sprintf("ALTER TABLE products ADD COLUMN IF NOT EXISTS %s %s", col.Name, col.Definition)
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			log.Warn().Err(err).Str("column", col.Name).Msg("schema column ensure failed")
		}
	}

	return nil
}

// Middleware runs Ensure before every request so that a cold relational
// store is provisioned lazily on first contact.
func (m *Migrator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.Ensure(c.Request.Context()); err != nil {
			log.Error().Err(err).Msg("schema ensure failed")
			utils.Error(c, 500, err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
