package handler

import (
	"net/http"

	"propertyhub/internal/model"
	"propertyhub/internal/service"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles listing-related HTTP requests
type ListingHandler struct {
	listings        *service.ListingService
	defaultPageSize int
	maxPageSize     int
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listings *service.ListingService, defaultPageSize, maxPageSize int) *ListingHandler {
	return &ListingHandler{
		listings:        listings,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Listings handles GET /api/v1/listings
func (h *ListingHandler) Listings(c *gin.Context) {
	h.respondPage(c, "page_size", "match", "matches")
}

// Dashboard handles GET /api/v1/dashboard
func (h *ListingHandler) Dashboard(c *gin.Context) {
	h.respondPage(c, "per", "property", "properties")
}

func (h *ListingHandler) respondPage(c *gin.Context, sizeParam, singular, plural string) {
	q := parseListingQuery(c, sizeParam, h.defaultPageSize, h.maxPageSize)

	page, err := h.listings.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "load listings")
		return
	}

	c.JSON(http.StatusOK, model.ListingResponse{
		ListingPage: *page,
		Label:       service.CountLabel(page.Total, singular, plural),
		Sort:        q.Sort,
		Filters:     q.Filters,
	})
}

// GetProperty handles GET /api/v1/properties/:slug
func (h *ListingHandler) GetProperty(c *gin.Context) {
	detail, err := h.listings.GetPropertyDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "get property")
		return
	}

	c.JSON(http.StatusOK, detail)
}
