package handler

import (
	"net/http"
	"net/url"

	"propertyhub/internal/model"

	"github.com/gin-gonic/gin"
)

// UTM parameters captured for lead attribution
const (
	UTMSource   = "utm_source"
	UTMMedium   = "utm_medium"
	UTMCampaign = "utm_campaign"
	UTMTerm     = "utm_term"
	UTMContent  = "utm_content"
)

var utmKeys = []string{UTMSource, UTMMedium, UTMCampaign, UTMTerm, UTMContent}

// UTMCookies stores utm_* query parameters in cookies. A value already held
// in a cookie is kept, so the first campaign that brought the visitor wins.
func UTMCookies(maxAgeDays int) gin.HandlerFunc {
	maxAge := maxAgeDays * 24 * 60 * 60
	return func(c *gin.Context) {
		for _, key := range utmKeys {
			value := c.Query(key)
			if value == "" {
				continue
			}
			if existing, err := c.Cookie(key); err == nil && existing != "" {
				continue
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(key, value, maxAge, "/", "", false, true)
			// Make the value visible to handlers serving this same request.
			c.Request.AddCookie(&http.Cookie{Name: key, Value: url.QueryEscape(value)})
		}
		c.Next()
	}
}

// AttributionFromRequest reads the UTM cookies of the request
func AttributionFromRequest(c *gin.Context) model.Attribution {
	get := func(key string) string {
		v, err := c.Cookie(key)
		if err != nil {
			return ""
		}
		return v
	}
	return model.Attribution{
		Source:   get(UTMSource),
		Medium:   get(UTMMedium),
		Campaign: get(UTMCampaign),
		Term:     get(UTMTerm),
		Content:  get(UTMContent),
	}
}
