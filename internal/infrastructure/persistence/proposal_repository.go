package persistence

import (
	"context"
	"errors"

	"github.com/labworks/backend/internal/domain/proposal"
	"github.com/labworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProposalRepository implements proposal.Repository using GORM
type GormProposalRepository struct {
	db *gorm.DB
}

// NewGormProposalRepository creates a new GormProposalRepository
func NewGormProposalRepository(db *gorm.DB) *GormProposalRepository {
	return &GormProposalRepository{db: db}
}

// FindAllWithClient returns all proposals with the client's name left-joined,
// newest first
func (r *GormProposalRepository) FindAllWithClient(ctx context.Context) ([]proposal.ProposalWithClient, error) {
	var proposals []proposal.ProposalWithClient
	if err := r.db.WithContext(ctx).
		Model(&proposal.Proposal{}).
		Select("proposals.*, clients.name AS client_name").
		Joins("LEFT JOIN clients ON proposals.client_id = clients.id").
		Order("proposals.created_at DESC").
		Scan(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

// FindByID finds a proposal by its ID
func (r *GormProposalRepository) FindByID(ctx context.Context, id int64) (*proposal.Proposal, error) {
	var p proposal.Proposal
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindDocument resolves a proposal plus the client contact fields for PDF
// export
func (r *GormProposalRepository) FindDocument(ctx context.Context, id int64) (*proposal.Document, error) {
	var doc proposal.Document
	err := r.db.WithContext(ctx).
		Model(&proposal.Proposal{}).
		Select("proposals.*, clients.name AS client_name, clients.email AS client_email, clients.company AS client_company").
		Joins("LEFT JOIN clients ON proposals.client_id = clients.id").
		Where("proposals.id = ?", id).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Save creates or updates a proposal
func (r *GormProposalRepository) Save(ctx context.Context, p *proposal.Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}
