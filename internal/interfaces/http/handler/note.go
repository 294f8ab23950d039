package handler

import (
	"github.com/gin-gonic/gin"
	crmapp "github.com/labworks/backend/internal/application/crm"
)

// NoteHandler handles contact note API endpoints
type NoteHandler struct {
	BaseHandler
	noteService *crmapp.ContactNoteService
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteService *crmapp.ContactNoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// RegisterRoutes registers contact note routes on the API group
func (h *NoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	crm := rg.Group("/crm")
	crm.GET("/clients/:id/notes", h.ListByClient)
	crm.POST("/notes", h.Create)
}

// ListByClient returns one client's contact notes
func (h *NoteHandler) ListByClient(c *gin.Context) {
	clientID, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Client not found")
		return
	}

	notes, err := h.noteService.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.OK(c, gin.H{"notes": notes})
}

// Create records a new contact note
func (h *NoteHandler) Create(c *gin.Context) {
	var req crmapp.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Client ID and note are required")
		return
	}

	id, err := h.noteService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.Created(c, id, "Note created successfully")
}
