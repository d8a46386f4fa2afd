package status

import "context"

type StatusDefinitionRepository interface {
	List(ctx context.Context) ([]StatusDefinition, error)
}
