package model

// Page size limits for listing queries
const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// SortKey selects the ordering of listing results
type SortKey string

// Supported sort keys
const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortBedsDesc  SortKey = "beds_desc"
)

// ParseSortKey returns the sort key for s, falling back to SortNewest
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortBedsDesc, SortNewest:
		return k
	default:
		return SortNewest
	}
}

// ListingFilters represents optional listing filters. A nil pointer or empty
// string means the filter is absent.
type ListingFilters struct {
	City           string `json:"city,omitempty"`
	Query          string `json:"q,omitempty"`
	Area           string `json:"area,omitempty"`
	MinBeds        *int   `json:"beds,omitempty"`
	MinBaths       *int   `json:"baths,omitempty"`
	MinPrice       *int64 `json:"price_min,omitempty"`
	MaxPrice       *int64 `json:"price_max,omitempty"`
	Parking        *bool  `json:"parking,omitempty"`
	Commissionable *bool  `json:"commissionable,omitempty"`
}

// ListingQuery represents a filter/sort/page request
type ListingQuery struct {
	Filters  ListingFilters
	Sort     SortKey
	Page     int
	PageSize int
}

// ListingPage represents one page of query results
type ListingPage struct {
	Results    []Property `json:"results"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
	HasPrev    bool       `json:"has_prev"`
	HasNext    bool       `json:"has_next"`
}

// ListingResponse represents a listing page as returned to clients
type ListingResponse struct {
	ListingPage
	Label   string         `json:"label"`
	Sort    SortKey        `json:"sort"`
	Filters ListingFilters `json:"filters"`
}

// ChatRequest represents a question about a property
type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

// ChatResponse represents the chat answer
type ChatResponse struct {
	Reply string `json:"reply"`
}
