package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"StackSim/internal/domain/models"
	domrepo "StackSim/internal/domain/repository"
	"StackSim/pkg/util"
)

// ClickHousePriceArchive persists daily closes in a ReplacingMergeTree so
// repeated write-throughs of overlapping windows stay idempotent.
type ClickHousePriceArchive struct {
	db    *sql.DB
	table string
}

// NewClickHousePriceArchive creates a ClickHouse-backed price archive.
func NewClickHousePriceArchive(db *sql.DB, table string) domrepo.PriceArchive {
	return &ClickHousePriceArchive{db: db, table: table}
}

func (a *ClickHousePriceArchive) SaveCloses(ctx context.Context, symbol string, points []models.PricePoint) error {
	if len(points) == 0 {
		return nil
	}

	// Chunked multi-row VALUES to limit round-trips on long histories.
	const chunkSize = 1000
	for start := 0; start < len(points); start += chunkSize {
		end := start + chunkSize
		if end > len(points) {
			end = len(points)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*3)
		for _, p := range points[start:end] {
			if p.Close <= 0 {
				continue
			}
			values = append(values, "(?, ?, ?)")
			args = append(args, symbol, util.Day(p.Date), p.Close)
		}
		if len(values) == 0 {
			continue
		}

		q := fmt.Sprintf("INSERT INTO %s (symbol, day, close) VALUES %s", a.table, strings.Join(values, ","))
		if _, err := a.db.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("archive save: %w", err)
		}
	}
	return nil
}

func (a *ClickHousePriceArchive) LoadCloses(ctx context.Context, symbol string, from, to time.Time) ([]models.PricePoint, error) {
	q := fmt.Sprintf("SELECT day, close FROM %s FINAL WHERE symbol = ? AND day >= ? AND day <= ? ORDER BY day", a.table)
	rows, err := a.db.QueryContext(ctx, q, symbol, util.Day(from), util.Day(to))
	if err != nil {
		return nil, fmt.Errorf("archive load: %w", err)
	}
	defer rows.Close()

	var points []models.PricePoint
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.Date, &p.Close); err != nil {
			return nil, fmt.Errorf("archive scan: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (a *ClickHousePriceArchive) Health(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func (a *ClickHousePriceArchive) Close() error {
	return nil // Connection pool is managed by pkg/clickhouse.
}
