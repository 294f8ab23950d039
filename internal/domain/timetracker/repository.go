package timetracker

import "context"

// TimeEntryRepository defines the interface for time entry persistence
type TimeEntryRepository interface {
	// FindAllDetailed returns all entries with project and client names
	// left-joined, ordered by date desc then creation desc
	FindAllDetailed(ctx context.Context) ([]TimeEntryDetailed, error)

	// FindByProject returns a project's entries, most recent date first
	FindByProject(ctx context.Context, projectID int64) ([]TimeEntry, error)

	// FindByProjectChronological returns a project's entries oldest date
	// first, the order the invoice breakdown renders them in
	FindByProjectChronological(ctx context.Context, projectID int64) ([]TimeEntry, error)

	// FindByID finds a time entry by its ID
	FindByID(ctx context.Context, id int64) (*TimeEntry, error)

	// Save creates or updates a time entry
	Save(ctx context.Context, entry *TimeEntry) error

	// Delete hard-deletes a time entry
	Delete(ctx context.Context, id int64) error

	// SumBilled returns the sum of hours*rate over a project's entries with
	// a non-null rate. Entries without a rate contribute nothing.
	SumBilled(ctx context.Context, projectID int64) (float64, error)
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindAllWithNames returns all invoices with client and project names
	// left-joined, newest first
	FindAllWithNames(ctx context.Context) ([]InvoiceWithNames, error)

	// FindByID finds an invoice by its ID
	FindByID(ctx context.Context, id int64) (*Invoice, error)

	// FindDocument resolves an invoice plus the client contact fields and
	// project name needed for PDF export
	FindDocument(ctx context.Context, id int64) (*InvoiceDocument, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error
}
