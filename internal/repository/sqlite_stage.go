package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

const stageColumns = `id, plan_id, name, kind, start_date, end_date, color,
		progress, order_index, created_at, updated_at`

type SQLiteStageRepo struct {
	db db.DBTX
}

func NewSQLiteStageRepo(dbtx db.DBTX) *SQLiteStageRepo {
	return &SQLiteStageRepo{db: dbtx}
}

func (r *SQLiteStageRepo) Create(ctx context.Context, s *domain.Stage) error {
	query := `INSERT INTO stages (` + stageColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.PlanID,
		s.Name,
		string(s.Kind),
		s.StartDate.Format(dateLayout),
		s.EndDate.Format(dateLayout),
		s.Color,
		s.Progress,
		s.OrderIndex,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting stage: %w", err)
	}
	if len(s.ElementIDs) > 0 {
		return r.SetElements(ctx, s.ID, s.ElementIDs)
	}
	return nil
}

func (r *SQLiteStageRepo) GetByID(ctx context.Context, id string) (*domain.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM stages WHERE id = ?`
	s, err := r.scanStage(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	ids, err := r.listElementIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	s.ElementIDs = ids
	return s, nil
}

func (r *SQLiteStageRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.Stage, error) {
	query := `SELECT ` + stageColumns + ` FROM stages
		WHERE plan_id = ? ORDER BY order_index, start_date, id`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}
	defer rows.Close()

	var stages []*domain.Stage
	for rows.Next() {
		s, err := r.scanStage(rows)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range stages {
		ids, err := r.listElementIDs(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.ElementIDs = ids
	}
	return stages, nil
}

func (r *SQLiteStageRepo) Update(ctx context.Context, s *domain.Stage) error {
	query := `UPDATE stages SET name = ?, kind = ?, start_date = ?, end_date = ?,
		color = ?, progress = ?, order_index = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		string(s.Kind),
		s.StartDate.Format(dateLayout),
		s.EndDate.Format(dateLayout),
		s.Color,
		s.Progress,
		s.OrderIndex,
		time.Now().UTC().Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating stage: %w", err)
	}
	return requireRowAffected(res, "stage", s.ID)
}

// SetElements replaces the stage's membership list, preserving order
// through the position column.
func (r *SQLiteStageRepo) SetElements(ctx context.Context, stageID string, elementIDs []string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM stage_elements WHERE stage_id = ?`, stageID); err != nil {
		return fmt.Errorf("clearing stage elements: %w", err)
	}
	for i, id := range elementIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO stage_elements (stage_id, element_id, position) VALUES (?, ?, ?)`,
			stageID, id, i)
		if err != nil {
			return fmt.Errorf("inserting stage element %s: %w", id, err)
		}
	}
	return nil
}

func (r *SQLiteStageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting stage: %w", err)
	}
	return requireRowAffected(res, "stage", id)
}

func (r *SQLiteStageRepo) listElementIDs(ctx context.Context, stageID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT element_id FROM stage_elements WHERE stage_id = ? ORDER BY position`, stageID)
	if err != nil {
		return nil, fmt.Errorf("listing stage elements: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning stage element: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQLiteStageRepo) scanStage(row rowScanner) (*domain.Stage, error) {
	var s domain.Stage
	var kind, start, end, created, updated string
	err := row.Scan(&s.ID, &s.PlanID, &s.Name, &kind, &start, &end,
		&s.Color, &s.Progress, &s.OrderIndex, &created, &updated)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("stage not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning stage: %w", err)
	}
	s.Kind = domain.StageKind(kind)
	s.StartDate = parseDate(start)
	s.EndDate = parseDate(end)
	s.CreatedAt = parseTimestamp(created)
	s.UpdatedAt = parseTimestamp(updated)
	return &s, nil
}
