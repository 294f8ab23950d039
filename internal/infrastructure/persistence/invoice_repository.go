package persistence

import (
	"context"
	"errors"

	"github.com/labworks/backend/internal/domain/shared"
	"github.com/labworks/backend/internal/domain/timetracker"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements timetracker.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindAllWithNames returns all invoices with client and project names joined,
// newest first
func (r *GormInvoiceRepository) FindAllWithNames(ctx context.Context) ([]timetracker.InvoiceWithNames, error) {
	var invoices []timetracker.InvoiceWithNames
	if err := r.db.WithContext(ctx).
		Model(&timetracker.Invoice{}).
		Select("invoices.*, clients.name AS client_name, projects.name AS project_name").
		Joins("LEFT JOIN clients ON invoices.client_id = clients.id").
		Joins("LEFT JOIN projects ON invoices.project_id = projects.id").
		Order("invoices.created_at DESC").
		Scan(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id int64) (*timetracker.Invoice, error) {
	var invoice timetracker.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindDocument resolves an invoice plus client contact fields and the project
// name for PDF export
func (r *GormInvoiceRepository) FindDocument(ctx context.Context, id int64) (*timetracker.InvoiceDocument, error) {
	var doc timetracker.InvoiceDocument
	err := r.db.WithContext(ctx).
		Model(&timetracker.Invoice{}).
		Select("invoices.*, clients.name AS client_name, clients.email AS client_email, clients.company AS client_company, projects.name AS project_name").
		Joins("LEFT JOIN clients ON invoices.client_id = clients.id").
		Joins("LEFT JOIN projects ON invoices.project_id = projects.id").
		Where("invoices.id = ?", id).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Save creates or updates an invoice. A duplicate invoice number violates the
// unique index and comes back as a raw storage error.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *timetracker.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}
