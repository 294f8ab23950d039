package proposal

import (
	"time"

	"github.com/labworks/backend/internal/domain/proposal"
)

// CreateProposalRequest represents a request to create a new proposal
type CreateProposalRequest struct {
	ClientID    int64    `json:"client_id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Scope       *string  `json:"scope"`
	PricingTier *string  `json:"pricing_tier"`
	TotalAmount *float64 `json:"total_amount"`
}

// UpdateProposalRequest represents a full replace of a proposal's mutable
// fields, including its status
type UpdateProposalRequest struct {
	Title       string   `json:"title" binding:"required"`
	Scope       *string  `json:"scope"`
	PricingTier *string  `json:"pricing_tier"`
	TotalAmount *float64 `json:"total_amount"`
	Status      string   `json:"status" binding:"omitempty,oneof=draft sent accepted rejected"`
}

// ProposalResponse represents a proposal in API responses
type ProposalResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	Title       string    `json:"title"`
	Scope       *string   `json:"scope"`
	PricingTier *string   `json:"pricing_tier"`
	TotalAmount *float64  `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProposalListResponse is a proposal list item with the client's name joined
// in. ClientName is null when the client has been deleted.
type ProposalListResponse struct {
	ProposalResponse
	ClientName *string `json:"client_name"`
}

func toProposalResponse(p *proposal.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		Title:       p.Title,
		Scope:       p.Scope,
		PricingTier: p.PricingTier,
		TotalAmount: p.TotalAmount,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}
