package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salon-site-server/catalog"
	"salon-site-server/models"
)

// NoMatchesMessage is shown when the filters exclude every service
const NoMatchesMessage = "No services match your current filters"

// RegisterServiceRoutes registers catalog routes
func RegisterServiceRoutes(router *gin.RouterGroup, h *handler) {
	router.GET("", h.getServices)
	router.GET("/featured", h.getFeaturedServices)
	router.GET("/filters", h.getServiceFilters)
	router.GET("/live", h.getLiveServices)
	router.GET("/:id", h.getService)
}

type priceBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// filterStateFromQuery applies the query parameters to a fresh state for records.
// Prices outside the slider range are clamped rather than rejected.
func filterStateFromQuery(c *gin.Context, records []models.ServiceRecord) (catalog.FilterState, error) {
	state := catalog.NewFilterState(records)
	state.SetCategory(c.Query("category"))
	state.SetGender(c.Query("gender"))

	mode, err := catalog.ParseDiscountMode(c.Query("discount"))
	if err != nil {
		return state, err
	}
	state.SetDiscountMode(mode)

	if raw := c.Query("min_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return state, err
		}
		state.SetLower(value)
	}
	if raw := c.Query("max_price"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return state, err
		}
		state.SetUpper(value)
	}
	return state, nil
}

func (h *handler) filteredResponse(c *gin.Context, store *catalog.Store) {
	records := []models.ServiceRecord{}
	source := ""
	if store != nil {
		records = store.Snapshot()
		source = store.Source()
	}

	state, err := filterStateFromQuery(c, records)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	matches := catalog.Filter(records, state)
	minPrice, maxPrice := state.Bounds()

	body := gin.H{
		"success":  true,
		"source":   source,
		"services": h.deps.Images.ResolveAll(matches),
		"filters":  state,
		"bounds":   priceBounds{Min: minPrice, Max: maxPrice},
		"count":    len(matches),
		"total":    len(records),
	}
	if len(matches) == 0 {
		body["message"] = NoMatchesMessage
	}
	c.JSON(http.StatusOK, body)
}

// getServices returns the catalog narrowed by the filter query
func (h *handler) getServices(c *gin.Context) {
	h.filteredResponse(c, h.deps.Catalog)
}

// getLiveServices filters the remotely fetched catalog
func (h *handler) getLiveServices(c *gin.Context) {
	h.filteredResponse(c, h.deps.Live)
}

// getFeaturedServices returns the home page carousel
func (h *handler) getFeaturedServices(c *gin.Context) {
	featured := catalog.Featured(h.deps.Catalog.Snapshot())
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": h.deps.Images.ResolveAll(featured),
		"count":    len(featured),
	})
}

// getServiceFilters returns what the filter panel offers
func (h *handler) getServiceFilters(c *gin.Context) {
	records := h.deps.Catalog.Snapshot()
	state := catalog.NewFilterState(records)
	minPrice, maxPrice := state.Bounds()

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"categories":     catalog.Categories(records),
		"genders":        models.AllGenders,
		"discount_modes": []catalog.DiscountMode{catalog.DiscountAll, catalog.DiscountWith, catalog.DiscountWithout},
		"bounds":         priceBounds{Min: minPrice, Max: maxPrice},
		"defaults":       state,
	})
}

// getService returns one catalog record
func (h *handler) getService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid service ID", "Service ID must be a number")
		return
	}

	record, ok := catalog.FindByID(h.deps.Catalog.Snapshot(), id)
	if !ok {
		errorResponse(c, http.StatusNotFound, "Service not found", "No service with that ID")
		return
	}

	record.Image = h.deps.Images.Resolve(record.Image)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    record,
	})
}
