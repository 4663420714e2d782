package model

import (
	"jumpy/shared/model"
)

const (
	TableName  = "faqs"
	EntityName = "faq"

	FieldID       = "id"
	FieldIsActive = "is_active"
)

const (
	DefaultSortBy  = "sort_order"
	DefaultSortDir = "ASC"
)

type FAQ struct {
	ID        string `db:"id"`
	Question  string `db:"question"`
	Answer    string `db:"answer"`
	SortOrder int    `db:"sort_order"`
	IsActive  bool   `db:"is_active"`
	model.Metadata
}
