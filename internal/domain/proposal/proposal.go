package proposal

import (
	"time"

	"github.com/labworks/backend/internal/domain/shared"
)

// ProposalStatus represents the pre-sale lifecycle of a proposal
type ProposalStatus = string

const (
	StatusDraft    ProposalStatus = "draft"
	StatusSent     ProposalStatus = "sent"
	StatusAccepted ProposalStatus = "accepted"
	StatusRejected ProposalStatus = "rejected"
)

// Proposal represents a pre-sale scope/pricing document for a client
type Proposal struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ClientID    int64     `gorm:"not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Scope       *string   `gorm:"type:text"`
	PricingTier *string   `gorm:"type:text"`
	TotalAmount *float64  `gorm:"type:real"`
	Status      string    `gorm:"type:text;not null;default:'draft'"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Proposal) TableName() string {
	return "proposals"
}

// ProposalWithClient is the read model for proposal listings with the
// client's name denormalized via a left join
type ProposalWithClient struct {
	Proposal
	ClientName *string `gorm:"column:client_name"`
}

// Document carries everything the PDF export needs: the proposal plus the
// client's contact block
type Document struct {
	Proposal
	ClientName    *string `gorm:"column:client_name"`
	ClientEmail   *string `gorm:"column:client_email"`
	ClientCompany *string `gorm:"column:client_company"`
}

// NewProposal creates a new proposal with required fields.
// Status starts as draft.
func NewProposal(clientID int64, title string, scope, pricingTier *string, totalAmount *float64) (*Proposal, error) {
	if clientID == 0 {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID is required")
	}
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Title is required")
	}

	return &Proposal{
		ClientID:    clientID,
		Title:       title,
		Scope:       scope,
		PricingTier: pricingTier,
		TotalAmount: totalAmount,
		Status:      StatusDraft,
		CreatedAt:   time.Now(),
	}, nil
}

// Update replaces the proposal's mutable fields, including status
func (p *Proposal) Update(title string, scope, pricingTier *string, totalAmount *float64, status string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title is required")
	}

	p.Title = title
	p.Scope = scope
	p.PricingTier = pricingTier
	p.TotalAmount = totalAmount
	p.Status = status

	return nil
}
