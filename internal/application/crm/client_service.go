package crm

import (
	"context"

	"github.com/labworks/backend/internal/domain/crm"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo crm.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo crm.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// List returns all clients, newest first
func (s *ClientService) List(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for _, client := range clients {
		responses = append(responses, toClientResponse(&client))
	}
	return responses, nil
}

// Get returns a single client by id
func (s *ClientService) Get(ctx context.Context, id int64) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toClientResponse(client)
	return &resp, nil
}

// Create stores a new client and returns its id
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (int64, error) {
	client, err := crm.NewClient(req.Name, req.Email, req.Phone, req.Company)
	if err != nil {
		return 0, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return 0, err
	}
	return client.ID, nil
}

// Update replaces a client's mutable fields
func (s *ClientService) Update(ctx context.Context, id int64, req UpdateClientRequest) error {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := client.Update(req.Name, req.Email, req.Phone, req.Company); err != nil {
		return err
	}
	return s.clientRepo.Save(ctx, client)
}

// Delete removes a client. Dependent projects, notes and invoices are left
// in place.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	return s.clientRepo.Delete(ctx, id)
}
