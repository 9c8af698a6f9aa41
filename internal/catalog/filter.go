package catalog

import (
	"sort"
	"strings"
)

// FilterSpec narrows the catalog. Empty category/size/color selections and an
// empty query pass everything through; they never mean "exclude all".
type FilterSpec struct {
	Categories []string `json:"categories"`
	PriceMin   int      `json:"price_min"`
	PriceMax   int      `json:"price_max"`
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
	InStock    bool     `json:"in_stock"`
}

// SortKey selects the ordering of a filtered listing.
type SortKey string

const (
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	// SortNewest keeps the catalog order: products carry no creation
	// timestamp, so "newest" is defined as the curated catalog order.
	SortNewest SortKey = "newest"
)

// ParseSortKey maps a raw value onto a supported key, defaulting to newest.
func ParseSortKey(value string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(value))) {
	case SortNameAsc:
		return SortNameAsc
	case SortNameDesc:
		return SortNameDesc
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortRatingDesc:
		return SortRatingDesc
	default:
		return SortNewest
	}
}

// FilterAndSort applies the query, filters and sort key to the given products
// and returns a new ordered slice. The input is never mutated.
func FilterAndSort(products []Product, query string, filters FilterSpec, key SortKey) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	categories := toSet(filters.Categories)
	sizes := toSet(filters.Sizes)
	colors := toSet(filters.Colors)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if len(categories) > 0 {
			if _, ok := categories[p.Category]; !ok {
				continue
			}
		}
		if p.Price < filters.PriceMin || (filters.PriceMax > 0 && p.Price > filters.PriceMax) {
			continue
		}
		if len(sizes) > 0 && !intersects(sizes, p.Sizes) {
			continue
		}
		if len(colors) > 0 && !intersects(colors, p.Colors) {
			continue
		}
		if filters.InStock && !p.InStock {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, key)
	return filtered
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name > products[j].Name })
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case SortNewest:
		// catalog order, nothing to do
	}
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

func intersects(set map[string]struct{}, values []string) bool {
	for _, v := range values {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}
