package crm

import (
	"time"

	"github.com/labworks/backend/internal/domain/shared"
)

// Client represents a customer/contact record in the CRM context.
// It is the aggregate root that projects, notes, invoices, and proposals
// reference by foreign key.
type Client struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	Email     *string   `gorm:"type:text"`
	Phone     *string   `gorm:"type:text"`
	Company   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client with required fields
func NewClient(name string, email, phone, company *string) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Client{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Company:   company,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces the client's mutable fields and touches updated_at.
// All four fields are replaced with whatever the caller supplies.
func (c *Client) Update(name string, email, phone, company *string) error {
	if err := validateClientName(name); err != nil {
		return err
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Company = company
	c.UpdatedAt = time.Now()

	return nil
}

func validateClientName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	return nil
}
