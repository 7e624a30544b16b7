package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusconnect/internal/model"
)

func (h *Handler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.events.List(c.Request.Context()))
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	created := h.events.Create(c.Request.Context(), event)
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetEvent(c *gin.Context) {
	event := h.events.ByID(c.Request.Context(), c.Param("id"))
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	updated, err := h.events.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	if !h.events.Delete(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LikeEvent bumps the like counter. Calling twice from the same user counts
// twice; likes carry no identity.
func (h *Handler) LikeEvent(c *gin.Context) {
	event := h.events.Like(c.Request.Context(), c.Param("id"))
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// RSVPEvent toggles the caller's membership in the RSVP set.
func (h *Handler) RSVPEvent(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to RSVP to event"})
		return
	}
	event := h.events.RSVP(c.Request.Context(), c.Param("id"), req.UserID)
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handler) CommentEvent(c *gin.Context) {
	var comment model.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}
	event := h.events.AddComment(c.Request.Context(), c.Param("id"), comment)
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, event)
}
