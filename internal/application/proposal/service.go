package proposal

import (
	"context"
	"fmt"

	"github.com/labworks/backend/internal/domain/proposal"
	"github.com/labworks/backend/internal/infrastructure/printing"
)

// Service handles proposal business operations, including PDF export
type Service struct {
	proposalRepo proposal.Repository
	templates    *printing.TemplateEngine
	renderer     printing.PDFRenderer
}

// NewService creates a new proposal Service
func NewService(proposalRepo proposal.Repository, templates *printing.TemplateEngine, renderer printing.PDFRenderer) *Service {
	return &Service{
		proposalRepo: proposalRepo,
		templates:    templates,
		renderer:     renderer,
	}
}

// List returns all proposals with the client's name joined in, newest first
func (s *Service) List(ctx context.Context) ([]ProposalListResponse, error) {
	proposals, err := s.proposalRepo.FindAllWithClient(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProposalListResponse, 0, len(proposals))
	for _, p := range proposals {
		responses = append(responses, ProposalListResponse{
			ProposalResponse: toProposalResponse(&p.Proposal),
			ClientName:       p.ClientName,
		})
	}
	return responses, nil
}

// Get returns a single proposal by id
func (s *Service) Get(ctx context.Context, id int64) (*ProposalResponse, error) {
	p, err := s.proposalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toProposalResponse(p)
	return &resp, nil
}

// Create stores a new proposal and returns its id
func (s *Service) Create(ctx context.Context, req CreateProposalRequest) (int64, error) {
	p, err := proposal.NewProposal(req.ClientID, req.Title, req.Scope, req.PricingTier, req.TotalAmount)
	if err != nil {
		return 0, err
	}

	if err := s.proposalRepo.Save(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// Update replaces a proposal's mutable fields, including its status
func (s *Service) Update(ctx context.Context, id int64, req UpdateProposalRequest) error {
	p, err := s.proposalRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := p.Update(req.Title, req.Scope, req.PricingTier, req.TotalAmount, req.Status); err != nil {
		return err
	}
	return s.proposalRepo.Save(ctx, p)
}

// GeneratePDF renders the statement-of-work document for a proposal and
// returns the PDF bytes plus the download filename.
func (s *Service) GeneratePDF(ctx context.Context, id int64) ([]byte, string, error) {
	doc, err := s.proposalRepo.FindDocument(ctx, id)
	if err != nil {
		return nil, "", err
	}

	html, err := s.templates.RenderProposal(doc)
	if err != nil {
		return nil, "", err
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: doc.Title,
	})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("proposal-%d.pdf", doc.ID)
	return result.PDFData, filename, nil
}
