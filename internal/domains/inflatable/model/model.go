package model

import (
	"jumpy/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "inflatables"
	EntityName = "inflatable"

	FieldID       = "id"
	FieldSlug     = "slug"
	FieldName     = "name"
	FieldCategory = "category"
	FieldIsActive = "is_active"
)

// Storefront and admin listings share the curated ordering, name breaks ties.
const (
	DefaultSortBy  = "sort_order, name"
	DefaultSortDir = "ASC"
)

type Inflatable struct {
	ID          string `db:"id"`
	Slug        string `db:"slug"`
	Name        string `db:"name"`
	Subtitle    string `db:"subtitle"`
	Category    string `db:"category"`
	Description string `db:"description"`

	Width         string `db:"width"`
	Length        string `db:"length"`
	Height        string `db:"height"`
	SpaceRequired string `db:"space_required"`

	CapacityAges2To4   string `db:"capacity_ages_2_4"`
	CapacityAges4To7   string `db:"capacity_ages_4_7"`
	CapacityAges7To10  string `db:"capacity_ages_7_10"`
	CapacityAges10Plus string `db:"capacity_ages_10_plus"`
	HeightRequirement  string `db:"height_requirement"`

	AdultsAllowed    bool   `db:"adults_allowed"`
	AdultWeightLimit string `db:"adult_weight_limit"`
	AdultMaxCount    string `db:"adult_max_count"`

	CanUseWater       bool   `db:"can_use_water"`
	HasPool           bool   `db:"has_pool"`
	HasSlide          bool   `db:"has_slide"`
	HasBasketballHoop bool   `db:"has_basketball_hoop"`
	HasClimbingWall   bool   `db:"has_climbing_wall"`
	ComboFeatures     string `db:"combo_features"`

	SetupSurface     string `db:"setup_surface"`
	PowerRequirement string `db:"power_requirement"`
	GeneratorNote    string `db:"generator_note"`

	Price     int    `db:"price"`
	PriceNote string `db:"price_note"`

	MainImageURL     string         `db:"main_image_url"`
	VideoURL         string         `db:"video_url"`
	GalleryImageURLs pq.StringArray `db:"gallery_image_urls"`

	MetaTitle       string `db:"meta_title"`
	MetaDescription string `db:"meta_description"`

	IsActive  bool `db:"is_active"`
	SortOrder int  `db:"sort_order"`
	model.Metadata
}
