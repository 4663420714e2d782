package dto

import (
	"jumpy/internal/domains/inflatable/model"
	"jumpy/shared"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateInflatableRequest struct {
	Slug        string `json:"slug"        validate:"required,min=3,max=120"`
	Name        string `json:"name"        validate:"required,min=3,max=120"`
	Subtitle    string `json:"subtitle"`
	Category    string `json:"category"    validate:"required,oneof=13x13-bouncers castle-bouncers combo-bouncers wet-dry-slides obstacle-courses"`
	Description string `json:"description"`

	Width         string `json:"width"`
	Length        string `json:"length"`
	Height        string `json:"height"`
	SpaceRequired string `json:"space_required"`

	CapacityAges2To4   string `json:"capacity_ages_2_4"`
	CapacityAges4To7   string `json:"capacity_ages_4_7"`
	CapacityAges7To10  string `json:"capacity_ages_7_10"`
	CapacityAges10Plus string `json:"capacity_ages_10_plus"`
	HeightRequirement  string `json:"height_requirement"`

	AdultsAllowed    bool   `json:"adults_allowed"`
	AdultWeightLimit string `json:"adult_weight_limit"`
	AdultMaxCount    string `json:"adult_max_count"`

	CanUseWater       bool   `json:"can_use_water"`
	HasPool           bool   `json:"has_pool"`
	HasSlide          bool   `json:"has_slide"`
	HasBasketballHoop bool   `json:"has_basketball_hoop"`
	HasClimbingWall   bool   `json:"has_climbing_wall"`
	ComboFeatures     string `json:"combo_features"`

	SetupSurface     string `json:"setup_surface"`
	PowerRequirement string `json:"power_requirement"`
	GeneratorNote    string `json:"generator_note"`

	Price     int    `json:"price"     validate:"gte=0"`
	PriceNote string `json:"price_note"`

	MainImageURL     string   `json:"main_image_url"     validate:"omitempty,url"`
	VideoURL         string   `json:"video_url"          validate:"omitempty,url"`
	GalleryImageURLs []string `json:"gallery_image_urls" validate:"omitempty,dive,url"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	IsActive  bool `json:"is_active"`
	SortOrder int  `json:"sort_order"`
}

func (c *CreateInflatableRequest) ToModel(user string) model.Inflatable {
	return model.Inflatable{
		ID:          uuid.NewString(),
		Slug:        c.Slug,
		Name:        c.Name,
		Subtitle:    c.Subtitle,
		Category:    c.Category,
		Description: c.Description,

		Width:         c.Width,
		Length:        c.Length,
		Height:        c.Height,
		SpaceRequired: c.SpaceRequired,

		CapacityAges2To4:   c.CapacityAges2To4,
		CapacityAges4To7:   c.CapacityAges4To7,
		CapacityAges7To10:  c.CapacityAges7To10,
		CapacityAges10Plus: c.CapacityAges10Plus,
		HeightRequirement:  c.HeightRequirement,

		AdultsAllowed:    c.AdultsAllowed,
		AdultWeightLimit: c.AdultWeightLimit,
		AdultMaxCount:    c.AdultMaxCount,

		CanUseWater:       c.CanUseWater,
		HasPool:           c.HasPool,
		HasSlide:          c.HasSlide,
		HasBasketballHoop: c.HasBasketballHoop,
		HasClimbingWall:   c.HasClimbingWall,
		ComboFeatures:     c.ComboFeatures,

		SetupSurface:     c.SetupSurface,
		PowerRequirement: c.PowerRequirement,
		GeneratorNote:    c.GeneratorNote,

		Price:     c.Price,
		PriceNote: c.PriceNote,

		MainImageURL:     c.MainImageURL,
		VideoURL:         c.VideoURL,
		GalleryImageURLs: pq.StringArray(c.GalleryImageURLs),

		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,

		IsActive:  c.IsActive,
		SortOrder: c.SortOrder,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateInflatableRequest carries partial updates. Zero-valued fields are left
// untouched, so boolean flags are pointers to distinguish false from absent.
type UpdateInflatableRequest struct {
	Slug        string `db:"slug"        json:"slug"        validate:"omitempty,min=3,max=120"`
	Name        string `db:"name"        json:"name"        validate:"omitempty,min=3,max=120"`
	Subtitle    string `db:"subtitle"    json:"subtitle"`
	Category    string `db:"category"    json:"category"    validate:"omitempty,oneof=13x13-bouncers castle-bouncers combo-bouncers wet-dry-slides obstacle-courses"`
	Description string `db:"description" json:"description"`

	Width         string `db:"width"          json:"width"`
	Length        string `db:"length"         json:"length"`
	Height        string `db:"height"         json:"height"`
	SpaceRequired string `db:"space_required" json:"space_required"`

	CapacityAges2To4   string `db:"capacity_ages_2_4"     json:"capacity_ages_2_4"`
	CapacityAges4To7   string `db:"capacity_ages_4_7"     json:"capacity_ages_4_7"`
	CapacityAges7To10  string `db:"capacity_ages_7_10"    json:"capacity_ages_7_10"`
	CapacityAges10Plus string `db:"capacity_ages_10_plus" json:"capacity_ages_10_plus"`
	HeightRequirement  string `db:"height_requirement"    json:"height_requirement"`

	AdultsAllowed    *bool  `db:"adults_allowed"     json:"adults_allowed"`
	AdultWeightLimit string `db:"adult_weight_limit" json:"adult_weight_limit"`
	AdultMaxCount    string `db:"adult_max_count"    json:"adult_max_count"`

	CanUseWater       *bool  `db:"can_use_water"       json:"can_use_water"`
	HasPool           *bool  `db:"has_pool"            json:"has_pool"`
	HasSlide          *bool  `db:"has_slide"           json:"has_slide"`
	HasBasketballHoop *bool  `db:"has_basketball_hoop" json:"has_basketball_hoop"`
	HasClimbingWall   *bool  `db:"has_climbing_wall"   json:"has_climbing_wall"`
	ComboFeatures     string `db:"combo_features"      json:"combo_features"`

	SetupSurface     string `db:"setup_surface"     json:"setup_surface"`
	PowerRequirement string `db:"power_requirement" json:"power_requirement"`
	GeneratorNote    string `db:"generator_note"    json:"generator_note"`

	Price     *int   `db:"price"      json:"price"      validate:"omitempty,gte=0"`
	PriceNote string `db:"price_note" json:"price_note"`

	MainImageURL     string         `db:"main_image_url"     json:"main_image_url"     validate:"omitempty,url"`
	VideoURL         string         `db:"video_url"          json:"video_url"          validate:"omitempty,url"`
	GalleryImageURLs pq.StringArray `db:"gallery_image_urls" json:"gallery_image_urls" validate:"omitempty,dive,url"`

	MetaTitle       string `db:"meta_title"       json:"meta_title"`
	MetaDescription string `db:"meta_description" json:"meta_description"`

	IsActive  *bool `db:"is_active"  json:"is_active"`
	SortOrder *int  `db:"sort_order" json:"sort_order"`
}

type InflatableResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Subtitle    string `json:"subtitle"`
	Category    string `json:"category"`
	Description string `json:"description"`

	Width         string `json:"width"`
	Length        string `json:"length"`
	Height        string `json:"height"`
	SpaceRequired string `json:"space_required"`

	CapacityAges2To4   string `json:"capacity_ages_2_4"`
	CapacityAges4To7   string `json:"capacity_ages_4_7"`
	CapacityAges7To10  string `json:"capacity_ages_7_10"`
	CapacityAges10Plus string `json:"capacity_ages_10_plus"`
	HeightRequirement  string `json:"height_requirement"`

	AdultsAllowed    bool   `json:"adults_allowed"`
	AdultWeightLimit string `json:"adult_weight_limit"`
	AdultMaxCount    string `json:"adult_max_count"`

	CanUseWater       bool   `json:"can_use_water"`
	HasPool           bool   `json:"has_pool"`
	HasSlide          bool   `json:"has_slide"`
	HasBasketballHoop bool   `json:"has_basketball_hoop"`
	HasClimbingWall   bool   `json:"has_climbing_wall"`
	ComboFeatures     string `json:"combo_features"`

	SetupSurface     string `json:"setup_surface"`
	PowerRequirement string `json:"power_requirement"`
	GeneratorNote    string `json:"generator_note"`

	Price     int    `json:"price"`
	PriceNote string `json:"price_note"`

	MainImageURL     string   `json:"main_image_url"`
	VideoURL         string   `json:"video_url"`
	GalleryImageURLs []string `json:"gallery_image_urls"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	IsActive  bool `json:"is_active"`
	SortOrder int  `json:"sort_order"`
	gDto.Metadata
}

func (r *InflatableResponse) FromModel(m model.Inflatable) {
	r.ID = m.ID
	r.Slug = m.Slug
	r.Name = m.Name
	r.Subtitle = m.Subtitle
	r.Category = m.Category
	r.Description = m.Description

	r.Width = m.Width
	r.Length = m.Length
	r.Height = m.Height
	r.SpaceRequired = m.SpaceRequired

	r.CapacityAges2To4 = m.CapacityAges2To4
	r.CapacityAges4To7 = m.CapacityAges4To7
	r.CapacityAges7To10 = m.CapacityAges7To10
	r.CapacityAges10Plus = m.CapacityAges10Plus
	r.HeightRequirement = m.HeightRequirement

	r.AdultsAllowed = m.AdultsAllowed
	r.AdultWeightLimit = m.AdultWeightLimit
	r.AdultMaxCount = m.AdultMaxCount

	r.CanUseWater = m.CanUseWater
	r.HasPool = m.HasPool
	r.HasSlide = m.HasSlide
	r.HasBasketballHoop = m.HasBasketballHoop
	r.HasClimbingWall = m.HasClimbingWall
	r.ComboFeatures = m.ComboFeatures

	r.SetupSurface = m.SetupSurface
	r.PowerRequirement = m.PowerRequirement
	r.GeneratorNote = m.GeneratorNote

	r.Price = m.Price
	r.PriceNote = m.PriceNote

	r.MainImageURL = m.MainImageURL
	r.VideoURL = m.VideoURL
	r.GalleryImageURLs = []string(m.GalleryImageURLs)

	r.MetaTitle = m.MetaTitle
	r.MetaDescription = m.MetaDescription

	r.IsActive = m.IsActive
	r.SortOrder = m.SortOrder
	r.Metadata.FromModel(m.Metadata)
}

type GetInflatablesResponse struct {
	Inflatables []InflatableResponse `json:"inflatables"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetInflatablesResponse) FromModels(models []model.Inflatable, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inflatables = make([]InflatableResponse, len(models))
	for i, m := range models {
		r.Inflatables[i].FromModel(m)
	}
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// AdminListFilter carries the admin listing dimensions. Absent values and the
// `all` sentinel disable the corresponding predicate.
type AdminListFilter struct {
	Search   string
	Category string
	Status   string
}

func (f AdminListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{}

	if f.Search != "" {
		group.Filters = append(group.Filters, searchFilter(f.Search))
	}

	if f.Category != "" && f.Category != constant.FilterValueAll {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Value:    f.Category,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	switch f.Status {
	case constant.StatusFilterActive:
		group.Filters = append(group.Filters, activeFilter(true))
	case constant.StatusFilterHidden:
		group.Filters = append(group.Filters, activeFilter(false))
	}

	return group
}

// PublicListFilter always pins is_active, the storefront never sees hidden rows.
func PublicListFilter(category string) gDto.FilterGroup {
	group := gDto.FilterGroup{
		Filters: []any{activeFilter(true)},
	}

	if category != "" && category != constant.FilterValueAll {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Value:    category,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}

func PublicSlugFilter(slug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSlug,
				Value:    slug,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			activeFilter(true),
		},
	}
}

func searchFilter(term string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "q_name", Field: "name", Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "q_subtitle", Field: "subtitle", Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "q_description", Field: "description", Value: term, Operator: gDto.FilterOperatorLike, Table: model.TableName},
		},
	}
}

func activeFilter(active bool) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldIsActive,
		Value:    active,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	}
}
