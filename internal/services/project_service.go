package services

import (
	"slices"

	"fruatrecard.my.id/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService. The list is copied so
// later changes to the caller's value do not leak into responses.
func NewProjectService(list *models.ProjectList) *ProjectService {
	if list == nil {
		return &ProjectService{projects: []models.Project{}}
	}
	return &ProjectService{projects: cloneProjects(list.Projects)}
}

// GetAll returns all projects in their configured order
func (s *ProjectService) GetAll() []models.Project {
	return cloneProjects(s.projects)
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return len(s.projects)
}

func cloneProjects(src []models.Project) []models.Project {
	out := make([]models.Project, len(src))
	for i, p := range src {
		p.Tags = slices.Clone(p.Tags)
		out[i] = p
	}
	return out
}
