package report

type SummaryRequest struct {
	UserID    string            `json:"user_id" validate:"required"`
	WeekStart string            `json:"week_start" validate:"required"`
	WeekEnd   string            `json:"week_end" validate:"required"`
	Entries   map[string]string `json:"entries"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
