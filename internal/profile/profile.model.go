package profile

// Profile is the row lazily provisioned for each authenticated user.
type Profile struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Timezone  string `json:"timezone"`
	ReminderH int    `json:"reminder_h"`
	ReminderM int    `json:"reminder_m"`
	PdfOn     bool   `json:"pdf_on"`
}

// Default settings applied on first authenticated access.
const (
	DefaultTimezone  = "UTC"
	DefaultReminderH = 9
	DefaultReminderM = 0
)
