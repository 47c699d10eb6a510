package handlers

import (
	"fmt"
	"net/http"
	"time"

	bookingRepo "bookwise/database/repository/booking"
	"bookwise/models"
	"bookwise/services/calendar"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler exposes raw availability queries and direct bookings that
// bypass the conversational flow.
type CalendarHandler struct {
	Calendar calendar.Service
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func NewCalendarHandler(cal calendar.Service, bookings bookingRepo.BookingRepository, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Calendar: cal, Bookings: bookings, Logger: logger}
}

// Availability returns open slots for a date range.
func (h *CalendarHandler) Availability(c *gin.Context) {
	start, err := parseTimeParam(c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start parameter", err.Error())
		return
	}
	end, err := parseTimeParam(c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid end parameter", err.Error())
		return
	}

	slots, err := h.Calendar.Availability(c.Request.Context(), start, end)
	if err != nil {
		h.Logger.Error("Failed to get availability", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get availability", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"availability": slots})
}

// Book creates a calendar event directly and records the booking.
func (h *CalendarHandler) Book(c *gin.Context) {
	var req models.BookEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	start, err := parseTimeParam(req.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid startTime", err.Error())
		return
	}
	end, err := parseTimeParam(req.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid endTime", err.Error())
		return
	}
	if !end.After(start) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid time range", "endTime must be after startTime")
		return
	}

	ctx := c.Request.Context()
	event, err := h.Calendar.CreateEvent(ctx, req.Title, req.Description, start, end)
	if err != nil {
		h.Logger.Error("Failed to book appointment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to book appointment", "")
		return
	}

	booking := models.Booking{
		Title:           req.Title,
		Description:     req.Description,
		Start:           start,
		End:             end,
		DurationMinutes: int(end.Sub(start).Minutes()),
		Status:          "confirmed",
		CalendarEventID: event.ID,
	}
	if _, err := h.Bookings.Create(ctx, booking); err != nil {
		h.Logger.Warn("Booked event but failed to save record", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"event": event, "status": "booked"})
}

// parseTimeParam accepts RFC3339 instants and bare dates.
func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing value")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time format %q", value)
}
