package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timeLayout keeps stored timestamps lexically sortable.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// reportRepo implements ReportRepo with plain SQL.
type reportRepo struct {
	db *sql.DB
}

func (r *reportRepo) Save(ctx context.Context, rep *ArchivedReport) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now()
	}
	if rep.AnswerKey == "" {
		rep.AnswerKey = "legacy"
	}

	answers, err := json.Marshal(rep.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	body, err := json.Marshal(rep.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO reports (id, run_id, created_at, answer_key, overall, recommendation, answers, report)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.RunID, formatTime(rep.CreatedAt), rep.AnswerKey,
		rep.Report.OverallConfidence, string(rep.Report.Recommendation),
		string(answers), string(body),
	)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func (r *reportRepo) List(ctx context.Context, opts QueryOpts) ([]ArchivedReport, error) {
	query, args := buildRangeQuery(
		`SELECT id, run_id, created_at, answer_key, answers, report FROM reports`,
		"created_at", opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var out []ArchivedReport
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return out, nil
}

func (r *reportRepo) Get(ctx context.Context, id string) (*ArchivedReport, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, run_id, created_at, answer_key, answers, report FROM reports WHERE id = ?`, id)
	rep, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rep, err
}

func (r *reportRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *reportRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM reports WHERE id NOT IN (
			SELECT id FROM reports ORDER BY created_at DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune reports: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune reports: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*ArchivedReport, error) {
	var (
		rep              ArchivedReport
		created          string
		answers, payload string
	)
	if err := s.Scan(&rep.ID, &rep.RunID, &created, &rep.AnswerKey, &answers, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan report: %w", err)
	}

	t, err := parseTime(created)
	if err != nil {
		return nil, fmt.Errorf("report %s: parse created_at: %w", rep.ID, err)
	}
	rep.CreatedAt = t

	if err := json.Unmarshal([]byte(answers), &rep.Answers); err != nil {
		return nil, fmt.Errorf("report %s: decode answers: %w", rep.ID, err)
	}
	if err := json.Unmarshal([]byte(payload), &rep.Report); err != nil {
		return nil, fmt.Errorf("report %s: decode report: %w", rep.ID, err)
	}
	return &rep, nil
}

// buildRangeQuery appends time-range filters, newest-first ordering and
// an optional limit to base.
func buildRangeQuery(base, column string, opts QueryOpts) (string, []any) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, column+" >= ?")
		args = append(args, formatTime(opts.From))
	}
	if !opts.To.IsZero() {
		where = append(where, column+" <= ?")
		args = append(args, formatTime(opts.To))
	}

	var b strings.Builder
	b.WriteString(base)
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY " + column + " DESC")
	if opts.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}
	return b.String(), args
}
