package domain

import "strings"

// Apply returns the products that pass the filter, preserving order
func (f ProductFilter) Apply(products []Product) []Product {
	search := strings.ToLower(f.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}
