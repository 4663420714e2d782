package dto

import (
	"jumpy/internal/domains/category/model"
)

type CategoryResponse struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Slug = model.Slug
	r.Name = model.Name
	r.SortOrder = model.SortOrder
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category) {
	r.Categories = make([]CategoryResponse, len(models))
	for i, m := range models {
		r.Categories[i].FromModel(m)
	}
}
