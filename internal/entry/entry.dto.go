package entry

type CreateEntryRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

type UpdateEntryRequest struct {
	EntryID string `json:"entry_id" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

// WeeklyEntriesResponse is the fixed-shape Monday..Friday view of one week.
// Days with no entry are null.
type WeeklyEntriesResponse struct {
	WeekStart string             `json:"week_start"`
	WeekEnd   string             `json:"week_end"`
	Entries   map[string]*string `json:"entries"`
}
