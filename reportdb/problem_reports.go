package reportdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"easyconvert.app/internal/logging"
)

const (
	MaxQueryLength   = 200
	MaxCommentLength = 1000
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var ErrEmptyQuery = errors.New("query cannot be empty")

// ProblemReport is a user report about a query that produced no result.
type ProblemReport struct {
	ID          string
	Query       string
	Comment     string
	FailureKind string
	CreatedAt   time.Time
}

// InsertProblemReport stores a report and returns it with its generated id.
func (c *Client) InsertProblemReport(ctx context.Context, query, comment, failureKind string) (report ProblemReport, err error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return ProblemReport{}, ErrEmptyQuery
	}

	report = ProblemReport{
		ID:          uuid.NewString(),
		Query:       truncate(query, MaxQueryLength),
		Comment:     truncate(strings.TrimSpace(comment), MaxCommentLength),
		FailureKind: failureKind,
		CreatedAt:   c.now().UTC().Truncate(time.Millisecond),
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return ProblemReport{}, fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "insert_problem_report")

	_, err = tx.ExecContext(ctx,
		`INSERT INTO problem_reports (id, query, comment, failure_kind, created_at) VALUES (?, ?, ?, ?, ?)`,
		report.ID, report.Query, report.Comment, report.FailureKind, report.CreatedAt.UnixMilli())
	if err != nil {
		return ProblemReport{}, fmt.Errorf("error inserting problem report: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return ProblemReport{}, fmt.Errorf("error committing transaction: %w", err)
	}

	logging.LogOperation(c.logger, "problem_report_stored",
		slog.String("id", report.ID),
		slog.String("failure_kind", report.FailureKind),
		slog.String("component", "reportdb"))
	return report, nil
}

// ListProblemReports returns up to limit reports, newest first. The second result reports
// whether more reports exist beyond the limit.
func (c *Client) ListProblemReports(ctx context.Context, limit int) (reports []ProblemReport, more bool, err error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := c.DB.QueryContext(ctx,
		`SELECT id, query, comment, failure_kind, created_at FROM problem_reports
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit+1)
	if err != nil {
		return nil, false, fmt.Errorf("error listing problem reports: %w", err)
	}
	defer logging.HandleDeferredError(&err, rows.Close, c.logger, "close_problem_report_rows")

	reports = []ProblemReport{}
	for rows.Next() {
		var r ProblemReport
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Query, &r.Comment, &r.FailureKind, &createdAt); err != nil {
			return nil, false, fmt.Errorf("error scanning problem report: %w", err)
		}
		r.CreatedAt = time.UnixMilli(createdAt).UTC()
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	if len(reports) > limit {
		return reports[:limit], true, nil
	}
	return reports, false, nil
}

// CountProblemReports returns the number of reports per failure kind.
func (c *Client) CountProblemReports(ctx context.Context) (counts map[string]int, err error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT failure_kind, COUNT(*) FROM problem_reports GROUP BY failure_kind`)
	if err != nil {
		return nil, fmt.Errorf("error counting problem reports: %w", err)
	}
	defer logging.HandleDeferredError(&err, rows.Close, c.logger, "close_problem_report_counts")

	counts = make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
