package postgresql

import (
	"context"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/status"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/database"
)

type statusDefinitionRepositoryImpl struct {
	db *database.DB
}

func NewStatusDefinitionRepository(db *database.DB) status.StatusDefinitionRepository {
	return &statusDefinitionRepositoryImpl{db: db}
}

// List implements status.StatusDefinitionRepository.
func (r *statusDefinitionRepositoryImpl) List(ctx context.Context) ([]status.StatusDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, key, name, max_duration_seconds,
			   is_login_kind, is_logout_kind, is_break_kind, is_work_kind,
			   color, background_color
		FROM status_definitions
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []status.StatusDefinition
	for rows.Next() {
		var def status.StatusDefinition
		err := rows.Scan(
			&def.ID,
			&def.Key,
			&def.Name,
			&def.MaxDurationSeconds,
			&def.IsLoginKind,
			&def.IsLogoutKind,
			&def.IsBreakKind,
			&def.IsWorkKind,
			&def.Color,
			&def.BackgroundColor,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
