package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	proposalapp "github.com/labworks/backend/internal/application/proposal"
)

// ProposalHandler handles proposal API endpoints, including PDF export
type ProposalHandler struct {
	BaseHandler
	proposalService *proposalapp.Service
}

// NewProposalHandler creates a new ProposalHandler
func NewProposalHandler(proposalService *proposalapp.Service) *ProposalHandler {
	return &ProposalHandler{proposalService: proposalService}
}

// RegisterRoutes registers proposal routes on the API group
func (h *ProposalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	proposals := rg.Group("/proposals")
	proposals.GET("/proposals", h.List)
	proposals.GET("/proposals/:id", h.Get)
	proposals.POST("/proposals", h.Create)
	proposals.PUT("/proposals/:id", h.Update)
	proposals.GET("/proposals/:id/pdf", h.GeneratePDF)
}

// List returns all proposals with the joined client name
func (h *ProposalHandler) List(c *gin.Context) {
	proposals, err := h.proposalService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.OK(c, gin.H{"proposals": proposals})
}

// Get returns a single proposal
func (h *ProposalHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Proposal not found")
		return
	}

	proposal, err := h.proposalService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err, "Proposal not found")
		return
	}
	h.OK(c, gin.H{"proposal": proposal})
}

// Create stores a new proposal
func (h *ProposalHandler) Create(c *gin.Context) {
	var req proposalapp.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Client ID and title are required")
		return
	}

	id, err := h.proposalService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.Created(c, id, "Proposal created successfully")
}

// Update replaces a proposal's mutable fields, including status
func (h *ProposalHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Proposal not found")
		return
	}

	var req proposalapp.UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Title is required")
		return
	}

	if err := h.proposalService.Update(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err, "Proposal not found")
		return
	}
	h.Message(c, "Proposal updated successfully")
}

// GeneratePDF streams the statement-of-work PDF for a proposal
func (h *ProposalHandler) GeneratePDF(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Proposal not found")
		return
	}

	data, filename, err := h.proposalService.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err, "Proposal not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
