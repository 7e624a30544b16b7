package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusconnect/internal/model"
)

// GetTimetable returns the weekly grid, optionally filtered to one division
// by display name via ?division=.
func (h *Handler) GetTimetable(c *gin.Context) {
	if division := c.Query("division"); division != "" {
		c.JSON(http.StatusOK, h.timetable.ByDivision(c.Request.Context(), division))
		return
	}
	c.JSON(http.StatusOK, h.timetable.List(c.Request.Context()))
}

// SaveTimetable overwrites the whole grid with the posted array.
func (h *Handler) SaveTimetable(c *gin.Context) {
	var entries []model.TimetableEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save timetable"})
		return
	}
	h.timetable.Save(c.Request.Context(), entries)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
