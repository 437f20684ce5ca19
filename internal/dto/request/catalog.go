package request

import (
	"math"
)

// Sort keys accepted by the catalog query.
const (
	SortRecommended = "recommended"
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortRatingDesc  = "rating-desc"
	SortYearDesc    = "year-desc"
)

// CatalogQuery is the filter configuration driving a catalog view. All active
// filters are conjunctive. Empty Query/Category means no filtering; the price
// interval is always active with defaults spanning the full range.
type CatalogQuery struct {
	Query    string  `json:"q"`
	Category string  `json:"category"`
	PriceMin float64 `json:"price_min" validate:"min=0"`
	PriceMax float64 `json:"price_max"`
	Sort     string  `json:"sort" validate:"omitempty,oneof=recommended price-asc price-desc rating-desc year-desc"`
}

func DefaultCatalogQuery() CatalogQuery {
	return CatalogQuery{
		PriceMin: 0,
		PriceMax: math.MaxFloat64,
		Sort:     SortRecommended,
	}
}
