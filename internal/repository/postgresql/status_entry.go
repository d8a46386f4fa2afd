package postgresql

import (
	"context"
	"time"

	"github.com/ezbpo/staff-activity-backend-go/internal/domain/tracking"
	"github.com/ezbpo/staff-activity-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type statusEntryRepositoryImpl struct {
	db *database.DB
}

func NewStatusEntryRepository(db *database.DB) tracking.StatusEntryRepository {
	return &statusEntryRepositoryImpl{db: db}
}

const statusEntryColumns = `id, staff_id, status_definition_id, project_id, started_at, ended_at, note`

// ListByStaff implements tracking.StatusEntryRepository.
func (r *statusEntryRepositoryImpl) ListByStaff(ctx context.Context, staffID string, window tracking.Window) ([]tracking.StatusEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + statusEntryColumns + `
		FROM status_entries
		WHERE staff_id = $1
	`
	args := []interface{}{staffID}

	if window == tracking.WindowToday {
		now := time.Now().UTC()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		query += ` AND started_at >= $2 AND started_at < $3`
		args = append(args, dayStart, dayStart.AddDate(0, 0, 1))
	}

	query += ` ORDER BY started_at DESC, id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatusEntries(rows)
}

// ListInRange implements tracking.StatusEntryRepository.
func (r *statusEntryRepositoryImpl) ListInRange(ctx context.Context, from, to time.Time) ([]tracking.StatusEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + statusEntryColumns + `
		FROM status_entries
		WHERE started_at >= $1 AND started_at < $2
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatusEntries(rows)
}

func scanStatusEntries(rows pgx.Rows) ([]tracking.StatusEntry, error) {
	var result []tracking.StatusEntry
	for rows.Next() {
		var e tracking.StatusEntry
		err := rows.Scan(
			&e.ID,
			&e.StaffID,
			&e.StatusDefinitionID,
			&e.ProjectID,
			&e.Start,
			&e.End,
			&e.Note,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
