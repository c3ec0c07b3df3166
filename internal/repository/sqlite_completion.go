package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

type SQLiteCompletionRepo struct {
	db db.DBTX
}

func NewSQLiteCompletionRepo(dbtx db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: dbtx}
}

func (r *SQLiteCompletionRepo) Add(ctx context.Context, m domain.CompletionMark) error {
	query := `INSERT OR IGNORE INTO completions (plan_id, element_id, date) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, m.PlanID, m.ElementID, m.Date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("inserting completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) ListByPlan(ctx context.Context, planID string) ([]domain.CompletionMark, error) {
	query := `SELECT plan_id, element_id, date FROM completions
		WHERE plan_id = ? ORDER BY date, element_id`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var marks []domain.CompletionMark
	for rows.Next() {
		var m domain.CompletionMark
		var date string
		if err := rows.Scan(&m.PlanID, &m.ElementID, &date); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		m.Date = parseDate(date)
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

func (r *SQLiteCompletionRepo) Delete(ctx context.Context, m domain.CompletionMark) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM completions WHERE plan_id = ? AND element_id = ? AND date = ?`,
		m.PlanID, m.ElementID, m.Date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("deleting completion: %w", err)
	}
	return requireRowAffected(res, "completion", m.ElementID)
}
