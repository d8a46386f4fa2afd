package master

import (
	"context"
	"fmt"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master/department"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master/project"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
)

type MasterDataServiceImpl struct {
	departmentRepo department.DepartmentRepository
	projectRepo    project.ProjectRepository
	definitionRepo status.StatusDefinitionRepository
}

func NewMasterDataService(
	departmentRepo department.DepartmentRepository,
	projectRepo project.ProjectRepository,
	definitionRepo status.StatusDefinitionRepository,
) master.MasterDataService {
	return &MasterDataServiceImpl{
		departmentRepo: departmentRepo,
		projectRepo:    projectRepo,
		definitionRepo: definitionRepo,
	}
}

// ListDepartments implements master.MasterDataService.
func (s *MasterDataServiceImpl) ListDepartments(ctx context.Context) ([]department.Department, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// ListProjects implements master.MasterDataService.
func (s *MasterDataServiceImpl) ListProjects(ctx context.Context) ([]project.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListStatusDefinitions implements master.MasterDataService.
func (s *MasterDataServiceImpl) ListStatusDefinitions(ctx context.Context) ([]status.DefinitionResponse, error) {
	definitions, err := s.definitionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list status definitions: %w", err)
	}

	out := make([]status.DefinitionResponse, 0, len(definitions))
	for _, def := range definitions {
		out = append(out, status.ToDefinitionResponse(def))
	}
	return out, nil
}
