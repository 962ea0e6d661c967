package profile

type Settings struct {
	UserID    string `json:"user_id"`
	Timezone  string `json:"timezone"`
	ReminderH int    `json:"reminder_h"`
	ReminderM int    `json:"reminder_m"`
	PdfOn     bool   `json:"pdf_on"`
}

// UpdateSettingsRequest carries a partial update; nil fields are left untouched.
type UpdateSettingsRequest struct {
	Timezone  *string `json:"timezone,omitempty"`
	ReminderH *int    `json:"reminder_h,omitempty"`
	ReminderM *int    `json:"reminder_m,omitempty"`
	PdfOn     *bool   `json:"pdf_on,omitempty"`
}

// Empty reports whether no field was provided at all.
func (r *UpdateSettingsRequest) Empty() bool {
	return r.Timezone == nil && r.ReminderH == nil && r.ReminderM == nil && r.PdfOn == nil
}
