package handler

import (
	"github.com/gin-gonic/gin"
	crmapp "github.com/labworks/backend/internal/application/crm"
)

// ProjectHandler handles project API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *crmapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *crmapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// RegisterRoutes registers project routes on the API group
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	crm := rg.Group("/crm")
	crm.GET("/projects", h.List)
	crm.GET("/clients/:id/projects", h.ListByClient)
	crm.POST("/projects", h.Create)
	crm.PUT("/projects/:id", h.Update)
	crm.DELETE("/projects/:id", h.Delete)
}

// List returns all projects with the joined client name
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.OK(c, gin.H{"projects": projects})
}

// ListByClient returns one client's projects
func (h *ProjectHandler) ListByClient(c *gin.Context) {
	clientID, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Client not found")
		return
	}

	projects, err := h.projectService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.OK(c, gin.H{"projects": projects})
}

// Create stores a new project
func (h *ProjectHandler) Create(c *gin.Context) {
	var req crmapp.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Client ID and name are required")
		return
	}

	id, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.Created(c, id, "Project created successfully")
}

// Update replaces a project's mutable fields
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Project not found")
		return
	}

	var req crmapp.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Name is required")
		return
	}

	if err := h.projectService.Update(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err, "Project not found")
		return
	}
	h.Message(c, "Project updated successfully")
}

// Delete removes a project
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Project not found")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err, "Project not found")
		return
	}
	h.Message(c, "Project deleted successfully")
}
