package timetracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestNewTimeEntry(t *testing.T) {
	t.Run("creates entry with explicit date", func(t *testing.T) {
		entry, err := NewTimeEntry(1, nil, 3, floatPtr(20), "2025-01-01")

		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", entry.Date)
		assert.Equal(t, 3.0, entry.Hours)
	})

	t.Run("defaults date to today", func(t *testing.T) {
		entry, err := NewTimeEntry(1, nil, 2, nil, "")

		require.NoError(t, err)
		assert.Equal(t, time.Now().Format(DateLayout), entry.Date)
	})

	t.Run("fails without project id", func(t *testing.T) {
		entry, err := NewTimeEntry(0, nil, 2, nil, "")

		assert.Error(t, err)
		assert.Nil(t, entry)
	})

	t.Run("fails without hours", func(t *testing.T) {
		entry, err := NewTimeEntry(1, nil, 0, nil, "")

		assert.Error(t, err)
		assert.Nil(t, entry)
	})
}

func TestTimeEntry_BilledAmount(t *testing.T) {
	t.Run("computes hours times rate", func(t *testing.T) {
		entry, err := NewTimeEntry(1, nil, 3, floatPtr(20), "2025-01-01")
		require.NoError(t, err)

		amount, billed := entry.BilledAmount()

		assert.True(t, billed)
		assert.Equal(t, "60", amount.String())
	})

	t.Run("rounds to cents", func(t *testing.T) {
		entry, err := NewTimeEntry(1, nil, 1.333, floatPtr(99.99), "2025-01-01")
		require.NoError(t, err)

		amount, billed := entry.BilledAmount()

		assert.True(t, billed)
		assert.Equal(t, "133.29", amount.StringFixed(2))
	})

	t.Run("unbilled without a rate", func(t *testing.T) {
		entry, err := NewTimeEntry(1, nil, 5, nil, "2025-01-01")
		require.NoError(t, err)

		amount, billed := entry.BilledAmount()

		assert.False(t, billed)
		assert.True(t, amount.IsZero())
	})
}

func TestNewInvoice(t *testing.T) {
	t.Run("defaults status to draft", func(t *testing.T) {
		invoice, err := NewInvoice(1, nil, "INV-001", 500, "", nil, nil)

		require.NoError(t, err)
		assert.Equal(t, InvoiceStatusDraft, invoice.Status)
		assert.Nil(t, invoice.ProjectID)
	})

	t.Run("fails without client id", func(t *testing.T) {
		invoice, err := NewInvoice(0, nil, "INV-001", 500, "", nil, nil)

		assert.Error(t, err)
		assert.Nil(t, invoice)
	})

	t.Run("fails without invoice number", func(t *testing.T) {
		invoice, err := NewInvoice(1, nil, "", 500, "", nil, nil)

		assert.Error(t, err)
		assert.Nil(t, invoice)
	})
}

func TestInvoice_UpdateTerms(t *testing.T) {
	invoice, err := NewInvoice(1, nil, "INV-001", 500, "", nil, nil)
	require.NoError(t, err)

	issue := "2025-02-01"
	due := "2025-03-03"
	invoice.UpdateTerms(750, InvoiceStatusSent, &issue, &due)

	assert.Equal(t, 750.0, invoice.Amount)
	assert.Equal(t, InvoiceStatusSent, invoice.Status)
	assert.Equal(t, "2025-02-01", *invoice.IssueDate)
	// Client and project references stay fixed
	assert.Equal(t, int64(1), invoice.ClientID)
}
