package services

import (
	"strings"

	"github.com/jaiyan-th/portfolio/internal/models"
	"github.com/jaiyan-th/portfolio/internal/repositories"
	"github.com/jaiyan-th/portfolio/internal/serializers"
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProject creates a new project. Only the seeder calls this; the
// public API never writes projects.
func (s *ProjectService) CreateProject(project *models.Project) error {
	// Validate project
	if err := project.Validate(); err != nil {
		return err
	}

	// Trim whitespace from title
	project.Title = strings.TrimSpace(project.Title)
	if project.Title == "" {
		return models.ErrProjectTitleRequired
	}

	return s.projectRepo.Create(project)
}

// GetAllProjects retrieves all projects serialized for the API, in
// insertion order
func (s *ProjectService) GetAllProjects() ([]serializers.ProjectRepresentation, error) {
	projects, err := s.projectRepo.GetAll()
	if err != nil {
		return nil, err
	}

	return serializers.SerializeProjects(projects), nil
}

// GetFeaturedProjects retrieves only the projects flagged for highlighted
// display, preserving relative order
func (s *ProjectService) GetFeaturedProjects() ([]serializers.ProjectRepresentation, error) {
	projects, err := s.projectRepo.GetFeatured()
	if err != nil {
		return nil, err
	}

	return serializers.SerializeProjects(projects), nil
}
