package department

import "context"

type DepartmentRepository interface {
	List(ctx context.Context) ([]Department, error)
}
