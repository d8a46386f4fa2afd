package project

import "context"

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
}
