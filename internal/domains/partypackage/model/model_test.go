package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jumpy/internal/domains/partypackage/model"
)

func TestPackageItemsValue(t *testing.T) {
	items := model.PackageItems{
		{Quantity: 1, Name: "Large Bounce House"},
		{Quantity: 2, Name: "Folding Table"},
	}

	value, err := items.Value()
	require.NoError(t, err)

	assert.JSONEq(t, `[{"quantity":1,"name":"Large Bounce House"},{"quantity":2,"name":"Folding Table"}]`, string(value.([]byte)))
}

func TestPackageItemsValueNil(t *testing.T) {
	var items model.PackageItems

	value, err := items.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestPackageItemsScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want model.PackageItems
	}{
		{
			name: "bytes",
			src:  []byte(`[{"quantity":3,"name":"Chairs"}]`),
			want: model.PackageItems{{Quantity: 3, Name: "Chairs"}},
		},
		{
			name: "string",
			src:  `[{"quantity":1,"name":"Generator"}]`,
			want: model.PackageItems{{Quantity: 1, Name: "Generator"}},
		},
		{
			name: "null column",
			src:  nil,
			want: model.PackageItems{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items model.PackageItems

			require.NoError(t, items.Scan(tt.src))
			assert.Equal(t, tt.want, items)
		})
	}
}

func TestPackageItemsScanUnsupportedType(t *testing.T) {
	var items model.PackageItems

	assert.Error(t, items.Scan(42))
}

func TestPackageItemsRoundTrip(t *testing.T) {
	items := model.PackageItems{{Quantity: 4, Name: "Concession Machine"}}

	value, err := items.Value()
	require.NoError(t, err)

	var scanned model.PackageItems
	require.NoError(t, scanned.Scan(value))

	assert.Equal(t, items, scanned)
}
