package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNormalizeDefaults(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   Product
	}{
		{
			name:   "all fields missing",
			record: Record{},
			want: Product{
				Name:        "Unknown",
				Price:       0,
				Brand:       "Unknown",
				Category:    "Unknown",
				Rating:      0,
				Description: "No description",
			},
		},
		{
			name: "all fields present",
			record: Record{
				Name:           ptr("Asus ROG"),
				Price:          ptr(int64(15_000_000)),
				Brand:          ptr("Asus"),
				Category:       ptr("laptop"),
				Specifications: &Specifications{Rating: ptr(4.5)},
				Description:    ptr("Laptop gaming"),
			},
			want: Product{
				Name:        "Asus ROG",
				Price:       15_000_000,
				Brand:       "Asus",
				Category:    "laptop",
				Rating:      4.5,
				Description: "Laptop gaming",
			},
		},
		{
			name:   "specifications present but rating missing",
			record: Record{Name: ptr("X"), Specifications: &Specifications{}},
			want: Product{
				Name:        "X",
				Brand:       "Unknown",
				Category:    "Unknown",
				Description: "No description",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Normalize())
		})
	}
}

func TestNormalizeNullJSONFields(t *testing.T) {
	// Explicit nulls in the source document behave like missing keys.
	raw := `{"name": null, "price": null, "specifications": {"rating": null}, "description": null}`

	var record Record
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	got := record.Normalize()
	assert.Equal(t, "Unknown", got.Name)
	assert.Equal(t, int64(0), got.Price)
	assert.Equal(t, float64(0), got.Rating)
	assert.Equal(t, "No description", got.Description)
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	records := []Record{
		{Name: ptr("A")},
		{Name: ptr("B")},
	}

	products := NormalizeAll(records)

	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
}
