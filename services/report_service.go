package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"weekupAPI/internal/gemini"
	"weekupAPI/internal/report"
	"weekupAPI/internal/week"
)

// TextGenerator produces a summary for a prompt. The Gemini client implements
// it; tests inject a fake.
type TextGenerator interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

type ReportService struct {
	db        *pgxpool.Pool
	generator TextGenerator
}

func NewReportService(db *pgxpool.Pool, generator TextGenerator) *ReportService {
	return &ReportService{db: db, generator: generator}
}

// GenerateWeekly builds the few-shot prompt, calls the model, and saves the
// report. Saving is best-effort: a generated summary is returned even when the
// write fails.
func (s *ReportService) GenerateWeekly(ctx context.Context, req *report.SummaryRequest) (string, error) {
	prompt := gemini.BuildWeeklyPrompt(req.Entries)

	summary, err := s.generator.Summarize(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if err := s.saveReport(ctx, req, summary); err != nil {
		log.Printf("ReportService: failed to save weekly report: %v", err)
	}

	return summary, nil
}

func (s *ReportService) saveReport(ctx context.Context, req *report.SummaryRequest, summary string) error {
	_, err := s.db.Exec(ctx, `
	INSERT INTO weekly_reports (id, user_id, week_start, week_end, sent_at, summary)
	VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New().String(), req.UserID, req.WeekStart, req.WeekEnd, time.Now(), summary)
	return err
}

// ListReports returns all weekly reports for a user, newest week first.
func (s *ReportService) ListReports(ctx context.Context, userID string) ([]*report.WeeklyReport, error) {
	rows, err := s.db.Query(ctx, `
	SELECT id, user_id, week_start, week_end, sent_at, summary
	FROM weekly_reports
	WHERE user_id = $1
	ORDER BY week_start DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly reports: %w", err)
	}
	defer rows.Close()

	reports := []*report.WeeklyReport{}
	for rows.Next() {
		r := &report.WeeklyReport{}
		var weekStart, weekEnd time.Time
		if err := rows.Scan(&r.ID, &r.UserID, &weekStart, &weekEnd, &r.SentAt, &r.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan weekly report: %w", err)
		}
		r.WeekStart = weekStart.Format(week.DateLayout)
		r.WeekEnd = weekEnd.Format(week.DateLayout)
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weekly reports: %w", err)
	}

	return reports, nil
}
