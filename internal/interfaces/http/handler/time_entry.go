package handler

import (
	"github.com/gin-gonic/gin"
	timetrackerapp "github.com/labworks/backend/internal/application/timetracker"
)

// TimeEntryHandler handles time entry API endpoints
type TimeEntryHandler struct {
	BaseHandler
	entryService *timetrackerapp.TimeEntryService
}

// NewTimeEntryHandler creates a new TimeEntryHandler
func NewTimeEntryHandler(entryService *timetrackerapp.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{entryService: entryService}
}

// RegisterRoutes registers time entry routes on the API group
func (h *TimeEntryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tracker := rg.Group("/timetracker")
	tracker.GET("/time-entries", h.List)
	tracker.GET("/projects/:id/time-entries", h.ListByProject)
	tracker.POST("/time-entries", h.Create)
	tracker.PUT("/time-entries/:id", h.Update)
	tracker.DELETE("/time-entries/:id", h.Delete)
}

// List returns all time entries with project and client names joined
func (h *TimeEntryHandler) List(c *gin.Context) {
	entries, err := h.entryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.OK(c, gin.H{"timeEntries": entries})
}

// ListByProject returns one project's time entries
func (h *TimeEntryHandler) ListByProject(c *gin.Context) {
	projectID, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Project not found")
		return
	}

	entries, err := h.entryService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.OK(c, gin.H{"timeEntries": entries})
}

// Create logs a new time entry
func (h *TimeEntryHandler) Create(c *gin.Context) {
	var req timetrackerapp.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Project ID and hours are required")
		return
	}

	id, err := h.entryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.Created(c, id, "Time entry logged successfully")
}

// Update replaces a time entry's mutable fields
func (h *TimeEntryHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Time entry not found")
		return
	}

	var req timetrackerapp.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Hours are required")
		return
	}

	if err := h.entryService.Update(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err, "Time entry not found")
		return
	}
	h.Message(c, "Time entry updated successfully")
}

// Delete removes a time entry
func (h *TimeEntryHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Time entry not found")
		return
	}

	if err := h.entryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err, "Time entry not found")
		return
	}
	h.Message(c, "Time entry deleted successfully")
}
