package dto_test

import (
	"jumpy/shared/dto"
	"reflect"
	"strings"
	"testing"
)

func TestFilterGetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "slug",
				Value:    "castle-bouncers",
				Operator: dto.FilterOperatorEq,
				Table:    "categories",
			},
			wantWhere: "categories.slug = :slug",
			wantArgs:  map[string]any{"slug": "castle-bouncers"},
		},
		{
			name: "like operator lowercases both sides",
			filter: dto.Filter{
				Field:    "name",
				Value:    "Castle",
				Operator: dto.FilterOperatorLike,
			},
			wantWhere: "LOWER(name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%Castle%"},
		},
		{
			name: "not eq operator",
			filter: dto.Filter{
				Field:    "status",
				Value:    "cancelled",
				Operator: dto.FilterOperatorNotEq,
			},
			wantWhere: "status != :status",
			wantArgs:  map[string]any{"status": "cancelled"},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "min_price",
				Field:    "price",
				Value:    100,
				Operator: dto.FilterOperatorGreaterEq,
			},
			wantWhere: "price >= :min_price",
			wantArgs:  map[string]any{"min_price": 100},
		},
		{
			name: "is null operator",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNull,
			},
			wantWhere: "deleted_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "name",
				Value:    "x",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, args)
			}
		})
	}
}

func TestFilterInOperator(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    []string{"new", "contacted"},
		Operator: dto.FilterOperatorIn,
	}

	where, args := filter.GetWhereClause()

	if !strings.Contains(where, "status IN (:status_0, :status_1)") {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["status_0"] != "new" || args["status_1"] != "contacted" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "q_name", Field: "name", Value: "combo", Operator: dto.FilterOperatorLike},
					dto.Filter{ArgName: "q_desc", Field: "description", Value: "combo", Operator: dto.FilterOperatorLike},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	if !strings.HasPrefix(where, "(") || !strings.HasSuffix(where, ")") {
		t.Errorf("expected parenthesized clause, got %q", where)
	}

	if !strings.Contains(where, " AND ") {
		t.Errorf("expected implicit AND between group members, got %q", where)
	}

	if !strings.Contains(where, " OR ") {
		t.Errorf("expected OR inside nested group, got %q", where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d: %v", len(args), args)
	}
}

func TestFilterGroupEmpty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
