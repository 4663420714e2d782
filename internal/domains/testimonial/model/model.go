package model

import (
	"jumpy/shared/model"
)

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID       = "id"
	FieldIsActive = "is_active"
	FieldFeatured = "featured"
)

// Featured testimonials surface first, newest after that.
const (
	DefaultSortBy  = "featured DESC, created_at"
	DefaultSortDir = "DESC"
)

type Testimonial struct {
	ID           string `db:"id"`
	CustomerName string `db:"customer_name"`
	Location     string `db:"location"`
	Content      string `db:"content"`
	Rating       int    `db:"rating"`
	Featured     bool   `db:"featured"`
	IsActive     bool   `db:"is_active"`
	model.Metadata
}
