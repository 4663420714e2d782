package dto_test

import (
	"jumpy/shared/dto"
	"net/http/httptest"
	"testing"
)

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "all params set",
			url:            "/v1/admin/inquiries?page=2&limit=15&sort_by=created_at&sort_dir=desc",
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 15, SortBy: "created_at", SortDir: "DESC"},
		},
		{
			name:           "invalid page ignored",
			url:            "/v1/admin/inquiries?page=abc&limit=-3",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:           "invalid sort dir ignored",
			url:            "/v1/admin/inquiries?sort_dir=sideways",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "no params without defaults",
			url:            "/v1/admin/inquiries",
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			var q dto.QueryParams
			q.FromRequest(r, tt.defaultRequest)

			if q != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, q)
			}
		})
	}
}

func TestForListing(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		pageSize int
		expected dto.QueryParams
	}{
		{
			name:     "page taken from request",
			url:      "/v1/admin/inflatables?page=3",
			pageSize: 10,
			expected: dto.QueryParams{Page: 3, Limit: 10},
		},
		{
			name:     "missing page defaults to 1",
			url:      "/v1/admin/inflatables",
			pageSize: 10,
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
		{
			name:     "non numeric page defaults to 1",
			url:      "/v1/admin/inquiries?page=zero",
			pageSize: 15,
			expected: dto.QueryParams{Page: 1, Limit: 15},
		},
		{
			name:     "caller cannot override page size",
			url:      "/v1/admin/inquiries?page=1&limit=1000",
			pageSize: 15,
			expected: dto.QueryParams{Page: 1, Limit: 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			q := dto.ForListing(r, tt.pageSize)

			if q != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, q)
			}
		})
	}
}
