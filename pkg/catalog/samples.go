package catalog

import (
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/lensline/eyewear-api/internal/models"
)

// SampleProducts returns the bundled sample catalog used to seed an empty
// backup. Ids are assigned sequentially from array position, starting at 1.
// A fresh slice is returned on every call so callers may mutate the result.
func SampleProducts() []models.Product {
	products := []models.Product{
		{
			Name:           "Aviator Classic",
			Price:          129.99,
			OriginalPrice:  159.99,
			Discount:       19,
			Category:       "Sunglasses",
			Brand:          "SkyLine",
			Material:       "Metal",
			Shape:          "Aviator",
			Color:          "Gold",
			Size:           "M",
			Sizes:          pq.StringArray{"S", "M", "L"},
			FrameColor:     "Gold",
			Style:          "Classic",
			Rim:            "Full Rim",
			Gender:         "Unisex",
			Type:           "Sunglasses",
			LensTypes:      pq.StringArray{"Polarized", "UV400"},
			Image:          "/images/aviator-classic-gold.jpg",
			Gallery:        pq.StringArray{"/images/aviator-classic-gold.jpg", "/images/aviator-classic-side.jpg"},
			ColorImages:    types.JSONText(`{"Gold":"/images/aviator-classic-gold.jpg","Silver":"/images/aviator-classic-silver.jpg"}`),
			Description:    "Timeless teardrop aviator with polarized lenses and a double bridge.",
			Features:       pq.StringArray{"Polarized lenses", "Adjustable nose pads", "Spring hinges"},
			Specifications: "Lens width: 58mm | Bridge: 14mm | Temple: 135mm",
			Status:         models.ProductStatusActive,
			Featured:       true,
			Bestseller:     true,
		},
		{
			Name:           "Wayfarer Street",
			Price:          99.00,
			OriginalPrice:  99.00,
			Discount:       0,
			Category:       "Sunglasses",
			Brand:          "UrbanOptic",
			Material:       "Acetate",
			Shape:          "Square",
			Color:          "Matte Black",
			Size:           "M",
			Sizes:          pq.StringArray{"M", "L"},
			FrameColor:     "Black",
			Style:          "Street",
			Rim:            "Full Rim",
			Gender:         "Unisex",
			Type:           "Sunglasses",
			LensTypes:      pq.StringArray{"Tinted", "UV400"},
			Image:          "/images/wayfarer-street-black.jpg",
			Gallery:        pq.StringArray{"/images/wayfarer-street-black.jpg"},
			ColorImages:    types.JSONText(`{"Matte Black":"/images/wayfarer-street-black.jpg","Tortoise":"/images/wayfarer-street-tortoise.jpg"}`),
			Description:    "Chunky acetate frame with a flat top bar, built for everyday wear.",
			Features:       pq.StringArray{"Scratch-resistant coating", "Lightweight acetate"},
			Specifications: "Lens width: 52mm | Bridge: 18mm | Temple: 145mm",
			Status:         models.ProductStatusActive,
			Featured:       false,
			Bestseller:     true,
		},
		{
			Name:           "Round Metal Reader",
			Price:          59.50,
			OriginalPrice:  79.50,
			Discount:       25,
			Category:       "Reading Glasses",
			Brand:          "PageTurner",
			Material:       "Stainless Steel",
			Shape:          "Round",
			Color:          "Silver",
			Size:           "S",
			Sizes:          pq.StringArray{"S", "M"},
			FrameColor:     "Silver",
			Style:          "Vintage",
			Rim:            "Full Rim",
			Gender:         "Unisex",
			Type:           "Reading",
			LensTypes:      pq.StringArray{"Reading +1.5", "Reading +2.0", "Reading +2.5"},
			Image:          "/images/round-reader-silver.jpg",
			Gallery:        pq.StringArray{"/images/round-reader-silver.jpg"},
			ColorImages:    types.JSONText(`{"Silver":"/images/round-reader-silver.jpg"}`),
			Description:    "Slim round readers with anti-reflective lenses in three strengths.",
			Features:       pq.StringArray{"Anti-reflective coating", "Flexible hinges"},
			Specifications: "Lens width: 49mm | Bridge: 20mm | Temple: 140mm",
			Status:         models.ProductStatusActive,
			Featured:       false,
			Bestseller:     false,
		},
		{
			Name:           "Clubmaster Heritage",
			Price:          119.00,
			OriginalPrice:  139.00,
			Discount:       14,
			Category:       "Eyeglasses",
			Brand:          "UrbanOptic",
			Material:       "Acetate / Metal",
			Shape:          "Browline",
			Color:          "Tortoise",
			Size:           "M",
			Sizes:          pq.StringArray{"S", "M", "L"},
			FrameColor:     "Tortoise",
			Style:          "Retro",
			Rim:            "Semi Rimless",
			Gender:         "Men",
			Type:           "Eyeglasses",
			LensTypes:      pq.StringArray{"Single Vision", "Blue Light"},
			Image:          "/images/clubmaster-tortoise.jpg",
			Gallery:        pq.StringArray{"/images/clubmaster-tortoise.jpg", "/images/clubmaster-detail.jpg"},
			ColorImages:    types.JSONText(`{"Tortoise":"/images/clubmaster-tortoise.jpg","Black":"/images/clubmaster-black.jpg"}`),
			Description:    "Browline frame mixing acetate brows with a slim metal chassis.",
			Features:       pq.StringArray{"Prescription ready", "Keyhole bridge"},
			Specifications: "Lens width: 51mm | Bridge: 21mm | Temple: 145mm",
			Status:         models.ProductStatusActive,
			Featured:       true,
			Bestseller:     false,
		},
		{
			Name:           "Cat Eye Luxe",
			Price:          149.00,
			OriginalPrice:  149.00,
			Discount:       0,
			Category:       "Sunglasses",
			Brand:          "VelvetFrame",
			Material:       "Acetate",
			Shape:          "Cat Eye",
			Color:          "Blush",
			Size:           "S",
			Sizes:          pq.StringArray{"S", "M"},
			FrameColor:     "Blush",
			Style:          "Glam",
			Rim:            "Full Rim",
			Gender:         "Women",
			Type:           "Sunglasses",
			LensTypes:      pq.StringArray{"Gradient", "UV400"},
			Image:          "/images/cateye-luxe-blush.jpg",
			Gallery:        pq.StringArray{"/images/cateye-luxe-blush.jpg"},
			ColorImages:    types.JSONText(`{"Blush":"/images/cateye-luxe-blush.jpg","Noir":"/images/cateye-luxe-noir.jpg"}`),
			Description:    "Upswept cat-eye silhouette with gradient lenses and gold accents.",
			Features:       pq.StringArray{"Gradient lenses", "Gold-tone hardware"},
			Specifications: "Lens width: 54mm | Bridge: 17mm | Temple: 140mm",
			Status:         models.ProductStatusActive,
			Featured:       true,
			Bestseller:     false,
		},
		{
			Name:           "ScreenShield Blue Light",
			Price:          69.99,
			OriginalPrice:  89.99,
			Discount:       22,
			Category:       "Computer Glasses",
			Brand:          "PixelGuard",
			Material:       "TR90",
			Shape:          "Rectangle",
			Color:          "Crystal Clear",
			Size:           "M",
			Sizes:          pq.StringArray{"M"},
			FrameColor:     "Clear",
			Style:          "Modern",
			Rim:            "Full Rim",
			Gender:         "Unisex",
			Type:           "Computer",
			LensTypes:      pq.StringArray{"Blue Light"},
			Image:          "/images/screenshield-clear.jpg",
			Gallery:        pq.StringArray{"/images/screenshield-clear.jpg"},
			ColorImages:    types.JSONText(`{"Crystal Clear":"/images/screenshield-clear.jpg"}`),
			Description:    "Feather-light TR90 frame filtering blue light for long screen days.",
			Features:       pq.StringArray{"Blue light filter", "Ultra lightweight", "Flexible frame"},
			Specifications: "Lens width: 53mm | Bridge: 19mm | Temple: 142mm",
			Status:         models.ProductStatusActive,
			Featured:       false,
			Bestseller:     true,
		},
	}

	for i := range products {
		products[i].ID = i + 1
	}
	return products
}
