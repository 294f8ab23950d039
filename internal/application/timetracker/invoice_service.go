package timetracker

import (
	"context"
	"fmt"

	"github.com/labworks/backend/internal/domain/crm"
	"github.com/labworks/backend/internal/domain/timetracker"
	"github.com/labworks/backend/internal/infrastructure/printing"
	"github.com/shopspring/decimal"
)

// InvoiceService handles invoicing, including deriving invoices from logged
// time and PDF export
type InvoiceService struct {
	invoiceRepo timetracker.InvoiceRepository
	entryRepo   timetracker.TimeEntryRepository
	projectRepo crm.ProjectRepository
	templates   *printing.TemplateEngine
	renderer    printing.PDFRenderer
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo timetracker.InvoiceRepository,
	entryRepo timetracker.TimeEntryRepository,
	projectRepo crm.ProjectRepository,
	templates *printing.TemplateEngine,
	renderer printing.PDFRenderer,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		entryRepo:   entryRepo,
		projectRepo: projectRepo,
		templates:   templates,
		renderer:    renderer,
	}
}

// List returns all invoices with client and project names joined in, newest
// first
func (s *InvoiceService) List(ctx context.Context) ([]InvoiceListResponse, error) {
	invoices, err := s.invoiceRepo.FindAllWithNames(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceListResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, InvoiceListResponse{
			InvoiceResponse: toInvoiceResponse(&invoice.Invoice),
			ClientName:      invoice.ClientName,
			ProjectName:     invoice.ProjectName,
		})
	}
	return responses, nil
}

// Create stores a new invoice and returns its id. A duplicate invoice number
// violates the unique constraint and surfaces as a storage error.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (int64, error) {
	invoice, err := timetracker.NewInvoice(req.ClientID, req.ProjectID, req.InvoiceNumber, req.Amount, req.Status, req.IssueDate, req.DueDate)
	if err != nil {
		return 0, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return 0, err
	}
	return invoice.ID, nil
}

// CreateFromTimeEntries derives an invoice from a project's billable time:
// the amount is the sum of hours*rate over the project's entries that have a
// rate. Nothing marks an entry as invoiced, so invoicing the same project
// twice bills the same hours twice.
func (s *InvoiceService) CreateFromTimeEntries(ctx context.Context, req CreateFromTimeEntriesRequest) (*DerivedInvoiceResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	total, err := s.entryRepo.SumBilled(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	amount := decimal.NewFromFloat(total).Round(2).InexactFloat64()

	invoice, err := timetracker.NewInvoice(project.ClientID, &project.ID, req.InvoiceNumber, amount, timetracker.InvoiceStatusDraft, req.IssueDate, req.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	return &DerivedInvoiceResponse{ID: invoice.ID, Amount: amount}, nil
}

// Update replaces an invoice's re-editable fields
func (s *InvoiceService) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) error {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	invoice.UpdateTerms(req.Amount, req.Status, req.IssueDate, req.DueDate)
	return s.invoiceRepo.Save(ctx, invoice)
}

// GeneratePDF renders the invoice document, including the time breakdown for
// the linked project, and returns the PDF bytes plus the download filename.
// The breakdown lists every entry logged against the project, whether or not
// it went into the stored amount.
func (s *InvoiceService) GeneratePDF(ctx context.Context, id int64) ([]byte, string, error) {
	doc, err := s.invoiceRepo.FindDocument(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var entries []timetracker.TimeEntry
	if doc.ProjectID != nil {
		entries, err = s.entryRepo.FindByProjectChronological(ctx, *doc.ProjectID)
		if err != nil {
			return nil, "", err
		}
	}

	html, err := s.templates.RenderInvoice(doc, entries)
	if err != nil {
		return nil, "", err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: "Invoice " + doc.InvoiceNumber,
	})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("invoice-%s.pdf", doc.InvoiceNumber)
	return result.PDFData, filename, nil
}
