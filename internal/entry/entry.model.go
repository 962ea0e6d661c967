package entry

type Entry struct {
	EntryID string `json:"entry_id"`
	UserID  string `json:"user_id"`
	Date    string `json:"date"`
	Text    string `json:"text"`
}
