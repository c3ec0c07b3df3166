package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

const elementColumns = `id, plan_id, label, kind, status, date, end_date,
		progress, color, created_at, updated_at`

type SQLiteElementRepo struct {
	db db.DBTX
}

func NewSQLiteElementRepo(dbtx db.DBTX) *SQLiteElementRepo {
	return &SQLiteElementRepo{db: dbtx}
}

func (r *SQLiteElementRepo) Create(ctx context.Context, e *domain.Element) error {
	query := `INSERT INTO elements (` + elementColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.PlanID,
		e.Label,
		string(e.Kind),
		string(e.Status),
		e.Date.Format(dateLayout),
		nullableTimeToString(e.EndDate, dateLayout),
		e.Progress,
		e.Color,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting element: %w", err)
	}
	return nil
}

func (r *SQLiteElementRepo) GetByID(ctx context.Context, id string) (*domain.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE id = ?`
	return r.scanElement(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteElementRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements
		WHERE plan_id = ? ORDER BY date, id`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing elements: %w", err)
	}
	defer rows.Close()

	var elements []*domain.Element
	for rows.Next() {
		e, err := r.scanElement(rows)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return elements, rows.Err()
}

func (r *SQLiteElementRepo) Update(ctx context.Context, e *domain.Element) error {
	query := `UPDATE elements SET label = ?, kind = ?, status = ?, date = ?,
		end_date = ?, progress = ?, color = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Label,
		string(e.Kind),
		string(e.Status),
		e.Date.Format(dateLayout),
		nullableTimeToString(e.EndDate, dateLayout),
		e.Progress,
		e.Color,
		time.Now().UTC().Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating element: %w", err)
	}
	return requireRowAffected(res, "element", e.ID)
}

func (r *SQLiteElementRepo) UpdateStatus(ctx context.Context, id string, status domain.ElementStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE elements SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating element status: %w", err)
	}
	return requireRowAffected(res, "element", id)
}

func (r *SQLiteElementRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM elements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting element: %w", err)
	}
	return requireRowAffected(res, "element", id)
}

func (r *SQLiteElementRepo) scanElement(row rowScanner) (*domain.Element, error) {
	var e domain.Element
	var kind, status, date, created, updated string
	var endDate sql.NullString
	err := row.Scan(&e.ID, &e.PlanID, &e.Label, &kind, &status, &date,
		&endDate, &e.Progress, &e.Color, &created, &updated)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("element not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning element: %w", err)
	}
	e.Kind = domain.ElementKind(kind)
	e.Status = domain.ElementStatus(status)
	e.Date = parseDate(date)
	e.EndDate = parseNullableTime(endDate, dateLayout)
	e.CreatedAt = parseTimestamp(created)
	e.UpdatedAt = parseTimestamp(updated)
	return &e, nil
}
