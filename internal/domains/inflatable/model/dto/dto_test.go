package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jumpy/internal/domains/inflatable/model/dto"
	"jumpy/shared/constant"
)

func TestPublicListFilterAlwaysPinsActive(t *testing.T) {
	tests := []struct {
		name     string
		category string
	}{
		{name: "no category", category: ""},
		{name: "all sentinel", category: constant.FilterValueAll},
		{name: "specific category", category: "castle-bouncers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg := dto.PublicListFilter(tt.category)
			where, args := fg.GetWhereClause()

			assert.Contains(t, where, "is_active = :is_active")
			assert.Equal(t, true, args["is_active"])
		})
	}
}

func TestPublicListFilterCategoryPredicate(t *testing.T) {
	fg := dto.PublicListFilter("wet-dry-slides")
	where, args := fg.GetWhereClause()

	assert.Contains(t, where, "inflatables.category = :category")
	assert.Equal(t, "wet-dry-slides", args["category"])

	fg = dto.PublicListFilter(constant.FilterValueAll)
	where, args = fg.GetWhereClause()

	assert.NotContains(t, where, "category = :category")
	assert.NotContains(t, args, "category")
}

func TestPublicSlugFilter(t *testing.T) {
	fg := dto.PublicSlugFilter("big-castle")
	where, args := fg.GetWhereClause()

	assert.Contains(t, where, "inflatables.slug = :slug")
	assert.Contains(t, where, "is_active = :is_active")
	assert.Equal(t, "big-castle", args["slug"])
	assert.Equal(t, true, args["is_active"])
}

func TestAdminListFilterComposition(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.AdminListFilter
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "empty filter yields no predicates",
			filter:       dto.AdminListFilter{},
			wantContains: nil,
			wantAbsent:   []string{"is_active", "category", "LIKE"},
		},
		{
			name:         "search spans name subtitle description",
			filter:       dto.AdminListFilter{Search: "combo"},
			wantContains: []string{"LOWER(inflatables.name)", "LOWER(inflatables.subtitle)", "LOWER(inflatables.description)", " OR "},
		},
		{
			name:         "status active maps to is_active true",
			filter:       dto.AdminListFilter{Status: constant.StatusFilterActive},
			wantContains: []string{"is_active = :is_active"},
		},
		{
			name:         "status hidden maps to is_active false",
			filter:       dto.AdminListFilter{Status: constant.StatusFilterHidden},
			wantContains: []string{"is_active = :is_active"},
		},
		{
			name:         "all sentinel disables category",
			filter:       dto.AdminListFilter{Category: constant.FilterValueAll},
			wantAbsent:   []string{"category"},
		},
		{
			name:   "all dimensions are AND combined",
			filter: dto.AdminListFilter{Search: "castle", Category: "castle-bouncers", Status: constant.StatusFilterActive},
			wantContains: []string{
				"LOWER(inflatables.name)",
				"inflatables.category = :category",
				"is_active = :is_active",
				" AND ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg := tt.filter.ToFilterGroup()
			where, _ := fg.GetWhereClause()

			for _, want := range tt.wantContains {
				assert.Contains(t, where, want)
			}

			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, where, absent)
			}
		})
	}
}

func TestAdminListFilterStatusValues(t *testing.T) {
	fgActive := dto.AdminListFilter{Status: constant.StatusFilterActive}.ToFilterGroup()
	_, argsActive := fgActive.GetWhereClause()
	assert.Equal(t, true, argsActive["is_active"])

	fgHidden := dto.AdminListFilter{Status: constant.StatusFilterHidden}.ToFilterGroup()
	_, argsHidden := fgHidden.GetWhereClause()
	assert.Equal(t, false, argsHidden["is_active"])
}

func TestAdminListFilterOrderIndependence(t *testing.T) {
	a := dto.AdminListFilter{Search: "castle", Category: "castle-bouncers", Status: constant.StatusFilterActive}

	fgA := a.ToFilterGroup()
	whereA, argsA := fgA.GetWhereClause()
	fgB := a.ToFilterGroup()
	whereB, argsB := fgB.GetWhereClause()

	assert.Equal(t, whereA, whereB)
	assert.Equal(t, argsA, argsB)

	parts := strings.Split(whereA, " AND ")
	assert.Len(t, parts, 3)
}

func TestCreateInflatableRequestToModel(t *testing.T) {
	req := dto.CreateInflatableRequest{
		Slug:     "big-castle",
		Name:     "Big Castle",
		Category: "castle-bouncers",
		Price:    250,
	}

	m := req.ToModel("admin-user")

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "big-castle", m.Slug)
	assert.Equal(t, 250, m.Price)
	assert.Equal(t, "admin-user", m.CreatedBy)
	assert.Equal(t, "admin-user", m.ModifiedBy)
	assert.False(t, m.CreatedAt.IsZero())
}
