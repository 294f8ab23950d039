package handler

import (
	"github.com/gin-gonic/gin"
	crmapp "github.com/labworks/backend/internal/application/crm"
)

// ClientHandler handles client API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *crmapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *crmapp.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// RegisterRoutes registers client routes on the API group
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	crm := rg.Group("/crm")
	crm.GET("/clients", h.List)
	crm.GET("/clients/:id", h.Get)
	crm.POST("/clients", h.Create)
	crm.PUT("/clients/:id", h.Update)
	crm.DELETE("/clients/:id", h.Delete)
}

// List returns all clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.OK(c, gin.H{"clients": clients})
}

// Get returns a single client
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Client not found")
		return
	}

	client, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err, "Client not found")
		return
	}
	h.OK(c, gin.H{"client": client})
}

// Create stores a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req crmapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Name is required")
		return
	}

	id, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.Created(c, id, "Client created successfully")
}

// Update replaces a client's mutable fields
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Client not found")
		return
	}

	var req crmapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Name is required")
		return
	}

	if err := h.clientService.Update(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err, "Client not found")
		return
	}
	h.Message(c, "Client updated successfully")
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Client not found")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err, "Client not found")
		return
	}
	h.Message(c, "Client deleted successfully")
}
