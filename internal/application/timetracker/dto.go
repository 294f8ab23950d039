package timetracker

import (
	"time"

	"github.com/labworks/backend/internal/domain/timetracker"
)

// =============================================================================
// Time entry DTOs
// =============================================================================

// CreateTimeEntryRequest represents a request to log a time entry
type CreateTimeEntryRequest struct {
	ProjectID   int64    `json:"project_id" binding:"required"`
	Description *string  `json:"description"`
	Hours       float64  `json:"hours" binding:"required"`
	Rate        *float64 `json:"rate"`
	Date        string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTimeEntryRequest represents a full replace of an entry's mutable
// fields
type UpdateTimeEntryRequest struct {
	Description *string  `json:"description"`
	Hours       float64  `json:"hours" binding:"required"`
	Rate        *float64 `json:"rate"`
	Date        string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// TimeEntryResponse represents a time entry in API responses. Amount is the
// computed hours*rate, omitted for unbilled entries.
type TimeEntryResponse struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	Description *string   `json:"description"`
	Hours       float64   `json:"hours"`
	Rate        *float64  `json:"rate"`
	Date        string    `json:"date"`
	Amount      *float64  `json:"amount,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TimeEntryListResponse is an entry list item with project and client names
// joined in
type TimeEntryListResponse struct {
	TimeEntryResponse
	ProjectName *string `json:"project_name"`
	ClientName  *string `json:"client_name"`
}

func toTimeEntryResponse(entry *timetracker.TimeEntry) TimeEntryResponse {
	resp := TimeEntryResponse{
		ID:          entry.ID,
		ProjectID:   entry.ProjectID,
		Description: entry.Description,
		Hours:       entry.Hours,
		Rate:        entry.Rate,
		Date:        entry.Date,
		CreatedAt:   entry.CreatedAt,
	}
	if amount, ok := entry.BilledAmount(); ok {
		value := amount.InexactFloat64()
		resp.Amount = &value
	}
	return resp
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to create an invoice directly
type CreateInvoiceRequest struct {
	ClientID      int64   `json:"client_id" binding:"required"`
	ProjectID     *int64  `json:"project_id"`
	InvoiceNumber string  `json:"invoice_number" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Status        string  `json:"status" binding:"omitempty,oneof=draft sent paid"`
	IssueDate     *string `json:"issue_date"`
	DueDate       *string `json:"due_date"`
}

// CreateFromTimeEntriesRequest represents a request to derive an invoice from
// a project's billable time entries
type CreateFromTimeEntriesRequest struct {
	ProjectID     int64   `json:"project_id" binding:"required"`
	InvoiceNumber string  `json:"invoice_number" binding:"required"`
	IssueDate     *string `json:"issue_date"`
	DueDate       *string `json:"due_date"`
}

// UpdateInvoiceRequest represents a full replace of an invoice's re-editable
// fields. Client and project references are fixed at creation.
type UpdateInvoiceRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	Status    string  `json:"status" binding:"omitempty,oneof=draft sent paid"`
	IssueDate *string `json:"issue_date"`
	DueDate   *string `json:"due_date"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID            int64     `json:"id"`
	ClientID      int64     `json:"client_id"`
	ProjectID     *int64    `json:"project_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	IssueDate     *string   `json:"issue_date"`
	DueDate       *string   `json:"due_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// InvoiceListResponse is an invoice list item with client and project names
// joined in
type InvoiceListResponse struct {
	InvoiceResponse
	ClientName  *string `json:"client_name"`
	ProjectName *string `json:"project_name"`
}

// DerivedInvoiceResponse is the result of creating an invoice from time
// entries: the new invoice's id plus the computed amount.
type DerivedInvoiceResponse struct {
	ID     int64
	Amount float64
}

func toInvoiceResponse(invoice *timetracker.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            invoice.ID,
		ClientID:      invoice.ClientID,
		ProjectID:     invoice.ProjectID,
		InvoiceNumber: invoice.InvoiceNumber,
		Amount:        invoice.Amount,
		Status:        invoice.Status,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		CreatedAt:     invoice.CreatedAt,
	}
}
