package handler

import (
	"strconv"
	"strings"

	"propertyhub/internal/model"

	"github.com/gin-gonic/gin"
)

// Read-path parameters are never rejected: a malformed value is treated as absent.

func queryInt(c *gin.Context, key string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return nil
	}
	return &v
}

func queryInt64(c *gin.Context, key string) *int64 {
	v, err := parseOptionalInt64(c.Query(key))
	if err != nil {
		return nil
	}
	return v
}

func queryBool(c *gin.Context, key string) *bool {
	v, ok := parseFlag(c.Query(key))
	if !ok {
		return nil
	}
	return &v
}

// parseOptionalInt64 returns nil for a blank value. Thousands separators are accepted.
func parseOptionalInt64(raw string) (*int64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseFlag reads checkbox and query-string booleans ("on", "yes", "true", "1", ...).
// ok is false for a blank or unrecognized value.
func parseFlag(raw string) (v bool, ok bool) {
	switch raw = strings.ToLower(strings.TrimSpace(raw)); raw {
	case "on", "yes":
		return true, true
	case "off", "no":
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// parseListingFilters reads the listing filters from the query string
func parseListingFilters(c *gin.Context) model.ListingFilters {
	return model.ListingFilters{
		City:           strings.TrimSpace(c.Query("city")),
		Query:          strings.TrimSpace(c.Query("q")),
		Area:           strings.TrimSpace(c.Query("area")),
		MinBeds:        queryInt(c, "beds"),
		MinBaths:       queryInt(c, "baths"),
		MinPrice:       queryInt64(c, "price_min"),
		MaxPrice:       queryInt64(c, "price_max"),
		Parking:        queryBool(c, "parking"),
		Commissionable: queryBool(c, "commissionable"),
	}
}

// parseListingQuery reads filters, sort and paging. sizeParam names the page
// size parameter; missing or invalid sizes use defaultSize and sizes above
// maxSize are capped.
func parseListingQuery(c *gin.Context, sizeParam string, defaultSize, maxSize int) model.ListingQuery {
	page := 1
	if p := queryInt(c, "page"); p != nil {
		page = *p
	}

	pageSize := defaultSize
	if s := queryInt(c, sizeParam); s != nil && *s > 0 {
		pageSize = *s
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}

	return model.ListingQuery{
		Filters:  parseListingFilters(c),
		Sort:     model.ParseSortKey(strings.TrimSpace(c.Query("sort"))),
		Page:     page,
		PageSize: pageSize,
	}
}
