package model

import (
	"jumpy/shared/model"
)

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldKey = "key"
)

const (
	DefaultSortBy  = "key"
	DefaultSortDir = "ASC"
)

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}
