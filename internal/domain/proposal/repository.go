package proposal

import "context"

// Repository defines the interface for proposal persistence
type Repository interface {
	// FindAllWithClient returns all proposals with the client's name
	// left-joined, newest first
	FindAllWithClient(ctx context.Context) ([]ProposalWithClient, error)

	// FindByID finds a proposal by its ID
	FindByID(ctx context.Context, id int64) (*Proposal, error)

	// FindDocument resolves a proposal plus the client contact fields
	// needed for PDF export
	FindDocument(ctx context.Context, id int64) (*Document, error)

	// Save creates or updates a proposal
	Save(ctx context.Context, proposal *Proposal) error
}
