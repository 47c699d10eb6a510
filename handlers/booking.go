package handlers

import (
	"net/http"

	bookingRepo "bookwise/database/repository/booking"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes committed appointment records.
type BookingHandler struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewBookingHandler(bookings bookingRepo.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Logger: logger}
}

// List returns booking records, filtered by date range when both bounds are
// given, otherwise the 20 most recent.
func (h *BookingHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	startRaw, endRaw := c.Query("start"), c.Query("end")

	if startRaw != "" && endRaw != "" {
		start, err := parseTimeParam(startRaw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid start parameter", err.Error())
			return
		}
		end, err := parseTimeParam(endRaw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid end parameter", err.Error())
			return
		}

		bookings, err := h.Bookings.GetByDateRange(ctx, start, end)
		if err != nil {
			h.Logger.Error("Failed to get bookings by range", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to get bookings", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	bookings, err := h.Bookings.Recent(ctx, 20)
	if err != nil {
		h.Logger.Error("Failed to get recent bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
