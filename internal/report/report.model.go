package report

import "time"

// WeeklyReport is append-only; generated summaries are never rewritten.
type WeeklyReport struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	WeekStart string    `json:"week_start"`
	WeekEnd   string    `json:"week_end"`
	SentAt    time.Time `json:"sent_at"`
	Summary   string    `json:"summary"`
}
