package timetracker

import (
	"time"

	"github.com/labworks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format for date-only fields
const DateLayout = "2006-01-02"

// TimeEntry represents a logged block of work against a project.
// Rate is optional; an entry without a rate is unbilled and contributes
// nothing to derived invoices.
type TimeEntry struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ProjectID   int64     `gorm:"not null;index"`
	Description *string   `gorm:"type:text"`
	Hours       float64   `gorm:"type:real;not null"`
	Rate        *float64  `gorm:"type:real"`
	Date        string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TimeEntry) TableName() string {
	return "time_entries"
}

// TimeEntryDetailed is the read model for entry listings with project and
// client names denormalized via left joins
type TimeEntryDetailed struct {
	TimeEntry
	ProjectName *string `gorm:"column:project_name"`
	ClientName  *string `gorm:"column:client_name"`
}

// NewTimeEntry creates a new time entry with required fields.
// Date defaults to the current date when empty.
func NewTimeEntry(projectID int64, description *string, hours float64, rate *float64, date string) (*TimeEntry, error) {
	if projectID == 0 {
		return nil, shared.NewDomainError("INVALID_PROJECT_ID", "Project ID is required")
	}
	if hours == 0 {
		return nil, shared.NewDomainError("INVALID_HOURS", "Hours are required")
	}
	if date == "" {
		date = time.Now().Format(DateLayout)
	}

	return &TimeEntry{
		ProjectID:   projectID,
		Description: description,
		Hours:       hours,
		Rate:        rate,
		Date:        date,
		CreatedAt:   time.Now(),
	}, nil
}

// Update replaces the entry's mutable fields
func (t *TimeEntry) Update(description *string, hours float64, rate *float64, date string) error {
	if hours == 0 {
		return shared.NewDomainError("INVALID_HOURS", "Hours are required")
	}

	t.Description = description
	t.Hours = hours
	t.Rate = rate
	t.Date = date

	return nil
}

// BilledAmount returns hours multiplied by rate, rounded to cents.
// The second return is false when the entry has no rate.
func (t *TimeEntry) BilledAmount() (decimal.Decimal, bool) {
	if t.Rate == nil {
		return decimal.Zero, false
	}
	amount := decimal.NewFromFloat(t.Hours).Mul(decimal.NewFromFloat(*t.Rate))
	return amount.Round(2), true
}
