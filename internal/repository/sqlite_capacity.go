package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

type SQLiteCapacityRepo struct {
	db db.DBTX
}

func NewSQLiteCapacityRepo(dbtx db.DBTX) *SQLiteCapacityRepo {
	return &SQLiteCapacityRepo{db: dbtx}
}

func (r *SQLiteCapacityRepo) Upsert(ctx context.Context, c *domain.Capacity) error {
	query := `INSERT INTO capacities (plan_id, date, effective, busy, completed, weather_icon)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(plan_id, date) DO UPDATE SET
			effective = excluded.effective,
			busy = excluded.busy,
			completed = excluded.completed,
			weather_icon = excluded.weather_icon`
	_, err := r.db.ExecContext(ctx, query,
		c.PlanID,
		c.Date.Format(dateLayout),
		c.Effective,
		c.Busy,
		c.Completed,
		c.WeatherIcon,
	)
	if err != nil {
		return fmt.Errorf("upserting capacity: %w", err)
	}
	return nil
}

func (r *SQLiteCapacityRepo) GetByDate(ctx context.Context, planID string, date time.Time) (*domain.Capacity, error) {
	query := `SELECT plan_id, date, effective, busy, completed, weather_icon
		FROM capacities WHERE plan_id = ? AND date = ?`
	return r.scanCapacity(r.db.QueryRowContext(ctx, query, planID, date.Format(dateLayout)))
}

func (r *SQLiteCapacityRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.Capacity, error) {
	query := `SELECT plan_id, date, effective, busy, completed, weather_icon
		FROM capacities WHERE plan_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing capacities: %w", err)
	}
	defer rows.Close()

	var caps []*domain.Capacity
	for rows.Next() {
		c, err := r.scanCapacity(rows)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return caps, rows.Err()
}

func (r *SQLiteCapacityRepo) Delete(ctx context.Context, planID string, date time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM capacities WHERE plan_id = ? AND date = ?`,
		planID, date.Format(dateLayout))
	if err != nil {
		return fmt.Errorf("deleting capacity: %w", err)
	}
	return requireRowAffected(res, "capacity", date.Format(dateLayout))
}

func (r *SQLiteCapacityRepo) scanCapacity(row rowScanner) (*domain.Capacity, error) {
	var c domain.Capacity
	var date string
	err := row.Scan(&c.PlanID, &date, &c.Effective, &c.Busy, &c.Completed, &c.WeatherIcon)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("capacity not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning capacity: %w", err)
	}
	c.Date = parseDate(date)
	return &c, nil
}
