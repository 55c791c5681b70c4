package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

// ProductStatus enumerates the lifecycle states of a catalog entry.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents a single eyewear catalog entry. The same struct is used
// on the wire, in the relational store and in the local backup, so the field
// set is identical everywhere; partial records never exist.
type Product struct {
	ID            int     `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Price         float64 `db:"price" json:"price"`
	OriginalPrice float64 `db:"original_price" json:"original_price"`
	Discount      int     `db:"discount" json:"discount"`

	Category   string         `db:"category" json:"category"`
	Brand      string         `db:"brand" json:"brand"`
	Material   string         `db:"material" json:"material"`
	Shape      string         `db:"shape" json:"shape"`
	Color      string         `db:"color" json:"color"`
	Size       string         `db:"size" json:"size"`
	Sizes      pq.StringArray `db:"sizes" json:"sizes"`
	FrameColor string         `db:"framecolor" json:"framecolor"`
	Style      string         `db:"style" json:"style"`
	Rim        string         `db:"rim" json:"rim"`
	Gender     string         `db:"gender" json:"gender"`
	Type       string         `db:"type" json:"type"`
	LensTypes  pq.StringArray `db:"lenstypes" json:"lenstypes"`

	Image       string         `db:"image" json:"image"`
	Gallery     pq.StringArray `db:"gallery" json:"gallery"`
	ColorImages types.JSONText `db:"colorimages" json:"colorimages"` // color name -> image URL

	Description    string         `db:"description" json:"description"`
	Features       pq.StringArray `db:"features" json:"features"`
	Specifications string         `db:"specifications" json:"specifications"`

	Status     ProductStatus `db:"status" json:"status"`
	Featured   bool          `db:"featured" json:"featured"`
	Bestseller bool          `db:"bestseller" json:"bestseller"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
