package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"jumpy/shared/model"
)

const (
	TableName  = "party_packages"
	EntityName = "party_package"

	FieldID       = "id"
	FieldIsActive = "is_active"
)

const (
	DefaultSortBy  = "sort_order"
	DefaultSortDir = "ASC"
)

type PackageItem struct {
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

// PackageItems maps to a jsonb column.
type PackageItems []PackageItem

func (p PackageItems) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}

	value, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal package items: %w", err)
	}

	return value, nil
}

func (p *PackageItems) Scan(src any) error {
	if src == nil {
		*p = PackageItems{}

		return nil
	}

	var data []byte

	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported source type for package items")
	}

	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("failed to unmarshal package items: %w", err)
	}

	return nil
}

type PartyPackage struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Price     int          `db:"price"`
	Items     PackageItems `db:"items"`
	ImageURL  string       `db:"image_url"`
	IsActive  bool         `db:"is_active"`
	SortOrder int          `db:"sort_order"`
	model.Metadata
}
