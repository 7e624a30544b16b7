package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusconnect/internal/model"
)

// AllUsers returns the merged login candidate list: students, faculty and
// admins.
func (h *Handler) AllUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.roster.AllUsers(c.Request.Context()))
}

func (h *Handler) ListStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.roster.Students(c.Request.Context()))
}

func (h *Handler) CreateStudent(c *gin.Context) {
	var student model.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create student"})
		return
	}
	created := h.roster.CreateStudent(c.Request.Context(), student)
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetStudent(c *gin.Context) {
	student := h.roster.StudentByID(c.Request.Context(), c.Param("id"))
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *Handler) UpdateStudent(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update student"})
		return
	}
	updated, err := h.roster.UpdateStudent(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update student"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteStudent(c *gin.Context) {
	if !h.roster.DeleteStudent(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) ListFaculty(c *gin.Context) {
	c.JSON(http.StatusOK, h.roster.Faculty(c.Request.Context()))
}

func (h *Handler) CreateFaculty(c *gin.Context) {
	var faculty model.User
	if err := c.ShouldBindJSON(&faculty); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create faculty"})
		return
	}
	if faculty.Role == "" {
		faculty.Role = model.RoleFaculty
	}
	created := h.roster.CreateFaculty(c.Request.Context(), faculty)
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetFaculty(c *gin.Context) {
	faculty := h.roster.FacultyByID(c.Request.Context(), c.Param("id"))
	if faculty == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Faculty not found"})
		return
	}
	c.JSON(http.StatusOK, faculty)
}

func (h *Handler) UpdateFaculty(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update faculty"})
		return
	}
	updated, err := h.roster.UpdateFaculty(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update faculty"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Faculty not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteFaculty(c *gin.Context) {
	if !h.roster.DeleteFaculty(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Faculty not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
