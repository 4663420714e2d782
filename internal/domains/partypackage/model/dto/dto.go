package dto

import (
	"jumpy/internal/domains/partypackage/model"
	gDto "jumpy/shared/dto"
	gModel "jumpy/shared/model"
	"jumpy/shared/timezone"

	"github.com/google/uuid"
)

type PackageItemPayload struct {
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Name     string `json:"name"     validate:"required"`
}

type CreatePartyPackageRequest struct {
	Name      string               `json:"name"       validate:"required,min=3,max=120"`
	Price     int                  `json:"price"      validate:"gte=0"`
	Items     []PackageItemPayload `json:"items"      validate:"omitempty,dive"`
	ImageURL  string               `json:"image_url"  validate:"omitempty,url"`
	IsActive  bool                 `json:"is_active"`
	SortOrder int                  `json:"sort_order"`
}

func (c *CreatePartyPackageRequest) ToModel(user string) model.PartyPackage {
	items := make(model.PackageItems, len(c.Items))
	for i, item := range c.Items {
		items[i] = model.PackageItem{Quantity: item.Quantity, Name: item.Name}
	}

	return model.PartyPackage{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Price:     c.Price,
		Items:     items,
		ImageURL:  c.ImageURL,
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

type UpdatePartyPackageRequest struct {
	Name      string             `db:"name"       json:"name"       validate:"omitempty,min=3,max=120"`
	Price     *int               `db:"price"      json:"price"      validate:"omitempty,gte=0"`
	Items     model.PackageItems `db:"items"      json:"items"      validate:"omitempty,dive"`
	ImageURL  string             `db:"image_url"  json:"image_url"  validate:"omitempty,url"`
	IsActive  *bool              `db:"is_active"  json:"is_active"`
	SortOrder *int               `db:"sort_order" json:"sort_order"`
}

type PartyPackageResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Price     int                 `json:"price"`
	Items     []model.PackageItem `json:"items"`
	ImageURL  string              `json:"image_url"`
	IsActive  bool                `json:"is_active"`
	SortOrder int                 `json:"sort_order"`
	gDto.Metadata
}

func (r *PartyPackageResponse) FromModel(m model.PartyPackage) {
	r.ID = m.ID
	r.Name = m.Name
	r.Price = m.Price
	r.Items = []model.PackageItem(m.Items)
	r.ImageURL = m.ImageURL
	r.IsActive = m.IsActive
	r.SortOrder = m.SortOrder
	r.Metadata.FromModel(m.Metadata)
}

type GetPartyPackagesResponse struct {
	PartyPackages []PartyPackageResponse `json:"party_packages"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetPartyPackagesResponse) FromModels(models []model.PartyPackage) {
	r.TotalData = len(models)

	r.PartyPackages = make([]PartyPackageResponse, len(models))
	for i, m := range models {
		r.PartyPackages[i].FromModel(m)
	}
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func ActiveOnlyFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
