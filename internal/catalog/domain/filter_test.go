package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductFilterApply(t *testing.T) {
	products := []Product{
		{ID: "1", Brand: "CeraVe", Name: "Hydrating Cleanser", Category: "skincare"},
		{ID: "2", Brand: "Vichy", Name: "Dercos Shampoo", Category: "hair-care"},
		{ID: "3", Brand: "Solgar", Name: "Vitamin D3", Category: "vitamins"},
		{ID: "4", Brand: "Korres", Name: "Vichy-style Cream", Category: "skincare"},
	}

	ids := func(ps []Product) []ID {
		out := []ID{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	tests := map[string]struct {
		filter ProductFilter
		want   []ID
	}{
		"empty filter keeps everything": {
			filter: ProductFilter{},
			want:   []ID{"1", "2", "3", "4"},
		},
		"category is an exact match": {
			filter: ProductFilter{Category: "skincare"},
			want:   []ID{"1", "4"},
		},
		"category prefix does not match": {
			filter: ProductFilter{Category: "skin"},
			want:   []ID{},
		},
		"search is case-insensitive on name": {
			filter: ProductFilter{Search: "SHAMPOO"},
			want:   []ID{"2"},
		},
		"search matches brand and name": {
			filter: ProductFilter{Search: "vichy"},
			want:   []ID{"2", "4"},
		},
		"category and search combine": {
			filter: ProductFilter{Category: "skincare", Search: "vichy"},
			want:   []ID{"4"},
		},
		"no match": {
			filter: ProductFilter{Search: "toothbrush"},
			want:   []ID{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(tc.filter.Apply(products)))
		})
	}
}
