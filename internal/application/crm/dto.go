package crm

import (
	"time"

	"github.com/labworks/backend/internal/domain/crm"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// UpdateClientRequest represents a full replace of a client's mutable fields
type UpdateClientRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toClientResponse(client *crm.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Company:   client.Company,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

// =============================================================================
// Project DTOs
// =============================================================================

// CreateProjectRequest represents a request to create a new project
type CreateProjectRequest struct {
	ClientID    int64    `json:"client_id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Status      string   `json:"status" binding:"omitempty,oneof=active on-hold completed"`
	Budget      *float64 `json:"budget"`
}

// UpdateProjectRequest represents a full replace of a project's mutable fields
type UpdateProjectRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Status      string   `json:"status" binding:"omitempty,oneof=active on-hold completed"`
	Budget      *float64 `json:"budget"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Budget      *float64  `json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectListResponse is a project list item with the owning client's name
// joined in. ClientName is null when the client has been deleted.
type ProjectListResponse struct {
	ProjectResponse
	ClientName *string `json:"client_name"`
}

func toProjectResponse(project *crm.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		ClientID:    project.ClientID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		Budget:      project.Budget,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// =============================================================================
// Contact note DTOs
// =============================================================================

// CreateNoteRequest represents a request to record a contact note
type CreateNoteRequest struct {
	ClientID int64  `json:"client_id" binding:"required"`
	Note     string `json:"note" binding:"required"`
}

// NoteResponse represents a contact note in API responses
type NoteResponse struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"client_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func toNoteResponse(note *crm.ContactNote) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		ClientID:  note.ClientID,
		Note:      note.Note,
		CreatedAt: note.CreatedAt,
	}
}
