package crm

import (
	"context"

	"github.com/labworks/backend/internal/domain/crm"
)

// ProjectService handles project-related business operations
type ProjectService struct {
	projectRepo crm.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo crm.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// List returns all projects with the owning client's name joined in,
// newest first.
func (s *ProjectService) List(ctx context.Context) ([]ProjectListResponse, error) {
	projects, err := s.projectRepo.FindAllWithClient(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProjectListResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, ProjectListResponse{
			ProjectResponse: toProjectResponse(&project.Project),
			ClientName:      project.ClientName,
		})
	}
	return responses, nil
}

// ListByClient returns the projects belonging to one client, newest first
func (s *ProjectService) ListByClient(ctx context.Context, clientID int64) ([]ProjectResponse, error) {
	projects, err := s.projectRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, toProjectResponse(&project))
	}
	return responses, nil
}

// Create stores a new project and returns its id
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (int64, error) {
	project, err := crm.NewProject(req.ClientID, req.Name, req.Description, req.Status, req.Budget)
	if err != nil {
		return 0, err
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return 0, err
	}
	return project.ID, nil
}

// Update replaces a project's mutable fields
func (s *ProjectService) Update(ctx context.Context, id int64, req UpdateProjectRequest) error {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := project.Update(req.Name, req.Description, req.Status, req.Budget); err != nil {
		return err
	}
	return s.projectRepo.Save(ctx, project)
}

// Delete removes a project. Time entries logged against it are left in place.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.projectRepo.Delete(ctx, id)
}
