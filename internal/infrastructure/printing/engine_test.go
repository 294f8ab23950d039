package printing

import (
	"testing"

	"github.com/labworks/backend/internal/domain/proposal"
	"github.com/labworks/backend/internal/domain/timetracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestTemplateEngine_RenderProposal(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	t.Run("renders all sections", func(t *testing.T) {
		doc := &proposal.Document{
			Proposal: proposal.Proposal{
				Title:       "Website Redesign",
				Scope:       strPtr("Full redesign of the marketing site"),
				PricingTier: strPtr("Premium"),
				TotalAmount: floatPtr(15000),
			},
			ClientName:    strPtr("Acme Corp"),
			ClientEmail:   strPtr("hello@acme.test"),
			ClientCompany: strPtr("Acme"),
		}

		html, err := engine.RenderProposal(doc)

		require.NoError(t, err)
		assert.Contains(t, html, "STATEMENT OF WORK")
		assert.Contains(t, html, "Website Redesign")
		assert.Contains(t, html, "Client: Acme Corp")
		assert.Contains(t, html, "Full redesign of the marketing site")
		assert.Contains(t, html, "Tier: Premium")
		assert.Contains(t, html, "Total Amount: $15000.00")
		assert.Contains(t, html, "Net 30 days from invoice date")
	})

	t.Run("falls back to defaults for missing fields", func(t *testing.T) {
		doc := &proposal.Document{
			Proposal:   proposal.Proposal{Title: "Bare"},
			ClientName: strPtr("Acme Corp"),
		}

		html, err := engine.RenderProposal(doc)

		require.NoError(t, err)
		assert.Contains(t, html, "Company: N/A")
		assert.Contains(t, html, "Email: N/A")
		assert.Contains(t, html, "No scope provided")
		assert.Contains(t, html, "Tier: Standard")
		assert.Contains(t, html, "Total Amount: $0.00")
	})
}

func TestTemplateEngine_RenderInvoice(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	doc := &timetracker.InvoiceDocument{
		Invoice: timetracker.Invoice{
			InvoiceNumber: "INV-001",
			Amount:        500,
			IssueDate:     strPtr("2025-02-01"),
		},
		ClientName:  strPtr("Acme Corp"),
		ProjectName: strPtr("Website"),
	}

	t.Run("renders breakdown with per-line amounts", func(t *testing.T) {
		entries := []timetracker.TimeEntry{
			{Date: "2025-01-01", Description: strPtr("Design"), Hours: 10, Rate: floatPtr(50)},
			{Date: "2025-01-02", Hours: 5},
		}

		html, err := engine.RenderInvoice(doc, entries)

		require.NoError(t, err)
		assert.Contains(t, html, "INVOICE")
		assert.Contains(t, html, "Invoice Number: INV-001")
		assert.Contains(t, html, "Issue Date: 2025-02-01")
		assert.Contains(t, html, "Due Date: N/A")
		assert.Contains(t, html, "Project: Website")
		assert.Contains(t, html, "2025-01-01 - Design: 10 hrs @ $50/hr = $500.00")
		assert.Contains(t, html, "2025-01-02 - Work: 5 hrs (unbilled)")
		assert.Contains(t, html, "Total Amount: $500.00")
	})

	t.Run("omits breakdown without entries", func(t *testing.T) {
		html, err := engine.RenderInvoice(doc, nil)

		require.NoError(t, err)
		assert.NotContains(t, html, "Time Breakdown")
	})
}
