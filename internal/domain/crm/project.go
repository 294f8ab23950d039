package crm

import (
	"time"

	"github.com/labworks/backend/internal/domain/shared"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus = string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project represents a unit of billable work owned by a client.
// The client reference is relational only: deleting a client leaves its
// projects behind with a dangling client_id.
type Project struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ClientID    int64     `gorm:"not null;index"`
	Name        string    `gorm:"type:text;not null"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"type:text;not null;default:'active'"`
	Budget      *float64  `gorm:"type:real"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// ProjectWithClient is the read model for project listings with the owning
// client's name denormalized via a left join. ClientName is nil when the
// client was deleted.
type ProjectWithClient struct {
	Project
	ClientName *string `gorm:"column:client_name"`
}

// NewProject creates a new project with required fields.
// Status defaults to "active" when empty.
func NewProject(clientID int64, name string, description *string, status string, budget *float64) (*Project, error) {
	if clientID == 0 {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	if status == "" {
		status = ProjectStatusActive
	}

	now := time.Now()
	return &Project{
		ClientID:    clientID,
		Name:        name,
		Description: description,
		Status:      status,
		Budget:      budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update replaces the project's mutable fields and touches updated_at
func (p *Project) Update(name string, description *string, status string, budget *float64) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name is required")
	}

	p.Name = name
	p.Description = description
	p.Status = status
	p.Budget = budget
	p.UpdatedAt = time.Now()

	return nil
}
