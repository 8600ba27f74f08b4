package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salon-site-server/catalog"
	"salon-site-server/logx"
	"salon-site-server/models"
)

// RegisterBookingRoutes registers the appointment form routes
func RegisterBookingRoutes(router *gin.RouterGroup, h *handler) {
	router.GET("/booking/options", h.getBookingOptions)
	router.GET("/booking/prefill", h.getBookingPrefill)
	router.POST("/bookings", h.submitBooking)
}

func (h *handler) getBookingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"options": h.deps.Booking.Options(),
	})
}

// getBookingPrefill answers the "Book this service" button
func (h *handler) getBookingPrefill(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("service_id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid service ID", "service_id must be a number")
		return
	}

	record, ok := catalog.FindByID(h.deps.Catalog.Snapshot(), id)
	if !ok {
		errorResponse(c, http.StatusNotFound, "Service not found", "No service with that ID")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"form":    h.deps.Booking.Prefill(record),
	})
}

// submitBooking validates and confirms an appointment. Nothing is stored.
func (h *handler) submitBooking(c *gin.Context) {
	var form models.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request format", err.Error())
		return
	}

	result := h.deps.Booking.Submit(form)
	if !result.Success {
		logx.Debug().Strs("missing", result.Missing).Msg("📝 Booking rejected")
		c.JSON(http.StatusBadRequest, result)
		return
	}

	logx.Info().Int("services", len(form.Services)).Str("location", form.Location).Msg("✅ Booking confirmed")
	c.JSON(http.StatusOK, result)
}
