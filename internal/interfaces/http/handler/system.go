package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labworks/backend/internal/infrastructure/persistence"
)

// SystemHandler serves the API directory and health endpoints
type SystemHandler struct {
	BaseHandler
	db      *persistence.Database
	version string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, version string) *SystemHandler {
	return &SystemHandler{db: db, version: version}
}

// RegisterRoutes registers the API directory on the API group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Index)
}

// Index returns the API directory
func (h *SystemHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "LabWorks API Server",
		"version": h.version,
		"endpoints": gin.H{
			"crm": gin.H{
				"clients":  "/api/crm/clients",
				"projects": "/api/crm/projects",
				"notes":    "/api/crm/notes",
			},
			"proposals": gin.H{
				"proposals":   "/api/proposals/proposals",
				"generatePdf": "/api/proposals/proposals/:id/pdf",
			},
			"timeTracker": gin.H{
				"timeEntries":        "/api/timetracker/time-entries",
				"invoices":           "/api/timetracker/invoices",
				"generateInvoicePdf": "/api/timetracker/invoices/:id/pdf",
			},
		},
	})
}

// Health reports whether the service and its database are reachable
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
