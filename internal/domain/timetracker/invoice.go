package timetracker

import (
	"time"

	"github.com/labworks/backend/internal/domain/shared"
)

// InvoiceStatus represents the billing lifecycle of an invoice
type InvoiceStatus = string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

// Invoice represents a billing document for a client, optionally tied to a
// project. The invoice number is unique across all invoices; the database
// constraint enforces it and a violation surfaces as a storage error.
type Invoice struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ClientID      int64     `gorm:"not null;index"`
	ProjectID     *int64    `gorm:"index"`
	InvoiceNumber string    `gorm:"type:text;uniqueIndex"`
	Amount        float64   `gorm:"type:real;not null"`
	Status        string    `gorm:"type:text;not null;default:'draft'"`
	IssueDate     *string   `gorm:"type:text"`
	DueDate       *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceWithNames is the read model for invoice listings with client and
// project names denormalized via left joins
type InvoiceWithNames struct {
	Invoice
	ClientName  *string `gorm:"column:client_name"`
	ProjectName *string `gorm:"column:project_name"`
}

// InvoiceDocument carries everything the PDF export needs: the invoice plus
// the client contact block and the project name
type InvoiceDocument struct {
	Invoice
	ClientName    *string `gorm:"column:client_name"`
	ClientEmail   *string `gorm:"column:client_email"`
	ClientCompany *string `gorm:"column:client_company"`
	ProjectName   *string `gorm:"column:project_name"`
}

// NewInvoice creates a new invoice with required fields.
// Status defaults to draft when empty.
func NewInvoice(clientID int64, projectID *int64, invoiceNumber string, amount float64, status string, issueDate, dueDate *string) (*Invoice, error) {
	if clientID == 0 {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID is required")
	}
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number is required")
	}
	if status == "" {
		status = InvoiceStatusDraft
	}

	return &Invoice{
		ClientID:      clientID,
		ProjectID:     projectID,
		InvoiceNumber: invoiceNumber,
		Amount:        amount,
		Status:        status,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		CreatedAt:     time.Now(),
	}, nil
}

// UpdateTerms replaces the re-editable fields. Client and project references
// are fixed at creation.
func (i *Invoice) UpdateTerms(amount float64, status string, issueDate, dueDate *string) {
	i.Amount = amount
	i.Status = status
	i.IssueDate = issueDate
	i.DueDate = dueDate
}
