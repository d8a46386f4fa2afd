package master

import (
	"context"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master/department"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/master/project"
	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
)

// MasterDataService serves the reference lists the dashboard filter
// controls are built from.
type MasterDataService interface {
	ListDepartments(ctx context.Context) ([]department.Department, error)
	ListProjects(ctx context.Context) ([]project.Project, error)
	ListStatusDefinitions(ctx context.Context) ([]status.DefinitionResponse, error)
}
