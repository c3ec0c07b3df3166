package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

const planColumns = `id, name, start_date, end_date, capacity_ceiling, created_at, updated_at`

// SQLitePlanRepo implements PlanRepo over a DBTX, so the same type serves
// both direct and transactional access.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(dbtx db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: dbtx}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (` + planColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.CapacityCeiling,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE id = ?`
	return r.scanPlan(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePlanRepo) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE name = ? COLLATE NOCASE`
	return r.scanPlan(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY created_at, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := r.scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	query := `UPDATE plans SET name = ?, start_date = ?, end_date = ?,
		capacity_ceiling = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.CapacityCeiling,
		time.Now().UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	return requireRowAffected(res, "plan", p.ID)
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return requireRowAffected(res, "plan", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLitePlanRepo) scanPlan(row rowScanner) (*domain.Plan, error) {
	var p domain.Plan
	var start, end, created, updated string
	err := row.Scan(&p.ID, &p.Name, &start, &end, &p.CapacityCeiling, &created, &updated)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("plan not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.StartDate = parseDate(start)
	p.EndDate = parseDate(end)
	p.CreatedAt = parseTimestamp(created)
	p.UpdatedAt = parseTimestamp(updated)
	return &p, nil
}

func requireRowAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s not found", entity, id)
	}
	return nil
}
