package crm

import "context"

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindAll returns all clients, newest first
	FindAll(ctx context.Context) ([]Client, error)

	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id int64) (*Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete hard-deletes a client. Dependent rows are not touched.
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository defines the interface for project persistence
type ProjectRepository interface {
	// FindAllWithClient returns all projects with the owning client's name
	// left-joined, newest first
	FindAllWithClient(ctx context.Context) ([]ProjectWithClient, error)

	// FindByClient returns a client's projects, newest first
	FindByClient(ctx context.Context, clientID int64) ([]Project, error)

	// FindByID finds a project by its ID
	FindByID(ctx context.Context, id int64) (*Project, error)

	// Save creates or updates a project
	Save(ctx context.Context, project *Project) error

	// Delete hard-deletes a project
	Delete(ctx context.Context, id int64) error
}

// ContactNoteRepository defines the interface for contact note persistence
type ContactNoteRepository interface {
	// FindByClient returns a client's notes, newest first
	FindByClient(ctx context.Context, clientID int64) ([]ContactNote, error)

	// Save creates a contact note
	Save(ctx context.Context, note *ContactNote) error
}
