// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/enrollment-stats/models"
)

var ErrSessionClosed = errors.New("session is closed")

// Filter narrows a query. Nil fields are ignored; set fields are ANDed
// and compared exactly (case-sensitive for state and county).
type Filter struct {
	ZipCode *int
	State   *string
	County  *string
}

// IsEmpty reports whether no field is set
func (f Filter) IsEmpty() bool {
	return f.ZipCode == nil && f.State == nil && f.County == nil
}

// Store is the append-only collection of enrollment records
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Session acquires a dedicated connection for the lifetime of one request.
// Callers must Close it on every exit path.
func (s *Store) Session(ctx context.Context) (*Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &Session{conn: conn}, nil
}

// Session is a request-scoped handle on the store
type Session struct {
	conn *sql.Conn
}

// Close releases the connection back to the pool. Calling it twice is a no-op.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

const insertEnrollment = `
	INSERT INTO enrollment_data (
		zip_code, state, county, year, health_enrollment, dental_enrollment,
		male, female, low_income, mid_income, high_income,
		age_18_25, age_25_35, age_35_45, age_45_55, age_56_plus,
		male_percentage, female_percentage,
		low_income_percentage, medium_income_percentage, high_income_percentage,
		age_18_25_percentage, age_25_35_percentage, age_35_45_percentage,
		age_45_55_percentage, age_56_plus_percentage,
		created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
	)
	RETURNING id`

const selectEnrollments = `
	SELECT id, zip_code, state, county, year, health_enrollment, dental_enrollment,
	       male, female, low_income, mid_income, high_income,
	       age_18_25, age_25_35, age_35_45, age_45_55, age_56_plus,
	       male_percentage, female_percentage,
	       low_income_percentage, medium_income_percentage, high_income_percentage,
	       age_18_25_percentage, age_25_35_percentage, age_35_45_percentage,
	       age_45_55_percentage, age_56_plus_percentage,
	       created_at
	FROM enrollment_data`

// Insert stores one record and returns it with its assigned ID
func (s *Session) Insert(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	if s.conn == nil {
		return models.Enrollment{}, ErrSessionClosed
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	err := s.conn.QueryRowContext(ctx, insertEnrollment,
		e.ZipCode, e.State, e.County, e.Year, e.HealthEnrollment, e.DentalEnrollment,
		e.Male, e.Female, e.LowIncome, e.MidIncome, e.HighIncome,
		e.Age18To25, e.Age25To35, e.Age35To45, e.Age45To55, e.Age56Plus,
		e.MalePercentage, e.FemalePercentage,
		e.LowIncomePercentage, e.MediumIncomePercentage, e.HighIncomePercentage,
		e.Age18To25Percentage, e.Age25To35Percentage, e.Age35To45Percentage,
		e.Age45To55Percentage, e.Age56PlusPercentage,
		e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		return models.Enrollment{}, fmt.Errorf("failed to insert enrollment: %w", err)
	}

	return e, nil
}

// InsertBulk stores records in order and returns how many were stored.
// It is not atomic: the first failure stops the batch, and records stored
// before it are kept.
func (s *Session) InsertBulk(ctx context.Context, records []models.Enrollment) (int, error) {
	for i, e := range records {
		if _, err := s.Insert(ctx, e); err != nil {
			return i, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return len(records), nil
}

// Query returns the records matching f in insertion order.
// An empty filter returns every record.
func (s *Session) Query(ctx context.Context, f Filter) ([]models.Enrollment, error) {
	if s.conn == nil {
		return nil, ErrSessionClosed
	}

	var (
		conds []string
		args  []any
	)
	if f.ZipCode != nil {
		args = append(args, *f.ZipCode)
		conds = append(conds, "zip_code = $"+strconv.Itoa(len(args)))
	}
	if f.State != nil {
		args = append(args, *f.State)
		conds = append(conds, "state = $"+strconv.Itoa(len(args)))
	}
	if f.County != nil {
		args = append(args, *f.County)
		conds = append(conds, "county = $"+strconv.Itoa(len(args)))
	}

	query := selectEnrollments
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	records := []models.Enrollment{}
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(
			&e.ID, &e.ZipCode, &e.State, &e.County, &e.Year,
			&e.HealthEnrollment, &e.DentalEnrollment,
			&e.Male, &e.Female, &e.LowIncome, &e.MidIncome, &e.HighIncome,
			&e.Age18To25, &e.Age25To35, &e.Age35To45, &e.Age45To55, &e.Age56Plus,
			&e.MalePercentage, &e.FemalePercentage,
			&e.LowIncomePercentage, &e.MediumIncomePercentage, &e.HighIncomePercentage,
			&e.Age18To25Percentage, &e.Age25To35Percentage, &e.Age35To45Percentage,
			&e.Age45To55Percentage, &e.Age56PlusPercentage,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		records = append(records, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read enrollments: %w", err)
	}

	return records, nil
}

// Count returns the number of stored records
func (s *Session) Count(ctx context.Context) (int, error) {
	if s.conn == nil {
		return 0, ErrSessionClosed
	}

	var count int
	if err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM enrollment_data").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}
