package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	timetrackerapp "github.com/labworks/backend/internal/application/timetracker"
	"github.com/labworks/backend/internal/interfaces/http/dto"
)

// InvoiceHandler handles invoice API endpoints, including derived invoicing
// and PDF export
type InvoiceHandler struct {
	BaseHandler
	invoiceService *timetrackerapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *timetrackerapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes registers invoice routes on the API group
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tracker := rg.Group("/timetracker")
	tracker.GET("/invoices", h.List)
	tracker.POST("/invoices", h.Create)
	tracker.POST("/invoices/from-time-entries", h.CreateFromTimeEntries)
	tracker.PUT("/invoices/:id", h.Update)
	tracker.GET("/invoices/:id/pdf", h.GeneratePDF)
}

// List returns all invoices with client and project names joined
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoiceService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.OK(c, gin.H{"invoices": invoices})
}

// Create stores a new invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req timetrackerapp.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Client ID, invoice number, and amount are required")
		return
	}

	id, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "")
		return
	}
	h.Created(c, id, "Invoice created successfully")
}

// CreateFromTimeEntries derives an invoice from a project's billable time
func (h *InvoiceHandler) CreateFromTimeEntries(c *gin.Context) {
	var req timetrackerapp.CreateFromTimeEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Project ID and invoice number are required")
		return
	}

	resp, err := h.invoiceService.CreateFromTimeEntries(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err, "Project not found")
		return
	}
	c.JSON(http.StatusOK, dto.DerivedCreateResponse{
		ID:      resp.ID,
		Amount:  resp.Amount,
		Message: "Invoice created successfully from time entries",
	})
}

// Update replaces an invoice's re-editable fields
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Invoice not found")
		return
	}

	var req timetrackerapp.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Amount is required")
		return
	}

	if err := h.invoiceService.Update(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err, "Invoice not found")
		return
	}
	h.Message(c, "Invoice updated successfully")
}

// GeneratePDF streams the invoice PDF, including the time breakdown for the
// linked project
func (h *InvoiceHandler) GeneratePDF(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.NotFound(c, "Invoice not found")
		return
	}

	data, filename, err := h.invoiceService.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err, "Invoice not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
