package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-site-server/services"
)

func (h *handler) getHome(c *gin.Context) {
	records := h.deps.Images.ResolveAll(h.deps.Catalog.Snapshot())
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.deps.Site.Home(records),
	})
}

func (h *handler) getPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"plans":   services.PlanViews(h.deps.Site.Plans),
	})
}

func (h *handler) getReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": h.deps.Site.Reviews,
	})
}

func (h *handler) getLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"locations": h.deps.Site.Locations,
	})
}
