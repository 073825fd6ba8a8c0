package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API endpoints on r
func RegisterRoutes(r gin.IRouter, listings *ListingHandler, chat *ChatHandler, leads *LeadHandler) {
	r.GET("/listings", listings.Listings)
	r.GET("/dashboard", listings.Dashboard)
	r.GET("/properties/:slug", listings.GetProperty)
	r.POST("/properties/:slug/chat", chat.Ask)
	r.POST("/leads", leads.Submit)
}
