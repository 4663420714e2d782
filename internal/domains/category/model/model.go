package model

import "jumpy/shared/model"

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID        = "id"
	FieldSlug      = "slug"
	FieldName      = "name"
	FieldSortOrder = "sort_order"
)

// DefaultOrdering keeps categories in their curated storefront order.
const (
	DefaultSortBy  = "sort_order"
	DefaultSortDir = "ASC"
)

type Category struct {
	ID        string `db:"id"`
	Slug      string `db:"slug"`
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
	model.Metadata
}
