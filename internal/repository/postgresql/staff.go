package postgresql

import (
	"context"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/staff"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

const staffColumns = `
	s.id, s.first_name, s.last_name, s.email, s.department_id, s.avatar_url, s.is_active,
	COALESCE(array_agg(sp.project_id) FILTER (WHERE sp.project_id IS NOT NULL), '{}') AS project_ids
`

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		LEFT JOIN staff_projects sp ON sp.staff_id = s.id
		WHERE s.id = $1
		GROUP BY s.id
	`

	var st staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&st.ID,
		&st.FirstName,
		&st.LastName,
		&st.Email,
		&st.DepartmentID,
		&st.AvatarURL,
		&st.IsActive,
		&st.ProjectIDs,
	)
	if err != nil {
		return staff.Staff{}, err
	}

	return st, nil
}

// ListActive implements staff.StaffRepository.
func (r *staffRepositoryImpl) ListActive(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + staffColumns + `
		FROM staff s
		LEFT JOIN staff_projects sp ON sp.staff_id = s.id
		WHERE s.is_active = TRUE
		GROUP BY s.id
		ORDER BY s.first_name, s.last_name, s.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		var st staff.Staff
		err := rows.Scan(
			&st.ID,
			&st.FirstName,
			&st.LastName,
			&st.Email,
			&st.DepartmentID,
			&st.AvatarURL,
			&st.IsActive,
			&st.ProjectIDs,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
