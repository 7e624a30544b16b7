package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusconnect/internal/auth"
	"campusconnect/internal/model"
	"campusconnect/internal/session"
)

// GetHistory lists archived logs newest first. Students (per the declared
// actor) only see their own records.
func (h *Handler) GetHistory(c *gin.Context) {
	actor := auth.ActorFrom(c)
	history := h.sessions.HistoryFor(c.Request.Context(), actor.Role, actor.ID)
	if history == nil {
		history = []model.AttendanceHistoryLog{}
	}
	c.JSON(http.StatusOK, history)
}

// AddHistory appends a raw log, for clients that archive on their own.
func (h *Handler) AddHistory(c *gin.Context) {
	var logEntry model.AttendanceHistoryLog
	if err := c.ShouldBindJSON(&logEntry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attendance log"})
		return
	}
	h.sessions.AddLog(c.Request.Context(), logEntry)
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// GetLive returns the live session document, JSON null when no session
// exists. Dashboards poll this every 2-3 seconds.
func (h *Handler) GetLive(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Live(c.Request.Context()))
}

// SaveLive overwrites the live document with whatever the client sent,
// including null. This is a whole-document write with no version check:
// two near-simultaneous writers race and the last one wins.
func (h *Handler) SaveLive(c *gin.Context) {
	var state *model.LiveAttendanceState
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save live attendance state"})
		return
	}
	h.sessions.SaveLive(c.Request.Context(), state)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check returns the roster annotated with each student's most recent
// archived status.
func (h *Handler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Check(c.Request.Context()))
}

func (h *Handler) StartSession(c *gin.Context) {
	var req struct {
		Department string `json:"department" binding:"required"`
		Division   string `json:"division" binding:"required"`
		Classroom  string `json:"classroom" binding:"required"`
		Headcount  int    `json:"headcount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state := h.sessions.Start(c.Request.Context(), session.StartInput{
		Department: req.Department,
		Division:   req.Division,
		Classroom:  req.Classroom,
		Headcount:  req.Headcount,
	})
	c.JSON(http.StatusCreated, state)
}

func (h *Handler) StopSession(c *gin.Context) {
	logEntry, err := h.sessions.Stop(c.Request.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stop session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"archived": logEntry != nil, "log": logEntry})
}

func (h *Handler) MarkManual(c *gin.Context) {
	var req struct {
		StudentID string `json:"studentId" binding:"required"`
		Status    string `json:"status" binding:"required,oneof=Present Absent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.sessions.MarkManual(c.Request.Context(), req.StudentID, req.Status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) CameraVerify(c *gin.Context) {
	var req struct {
		StudentID string `json:"studentId" binding:"required"`
		Image     string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.sessions.CameraVerify(c.Request.Context(), req.StudentID, req.Image)
	if err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, state)
}
