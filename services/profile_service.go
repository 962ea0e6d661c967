package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"weekupAPI/internal/profile"
)

var ErrProfileNotFound = errors.New("user not found")

type ProfileService struct {
	db *pgxpool.Pool
}

func NewProfileService(db *pgxpool.Pool) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	query := `
	SELECT user_id, email, timezone, reminder_h, reminder_m, pdf_on
	FROM users
	WHERE user_id = $1
	`

	p := &profile.Profile{}
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.Email,
		&p.Timezone,
		&p.ReminderH,
		&p.ReminderM,
		&p.PdfOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// CreateProfile inserts a profile row with default settings.
func (s *ProfileService) CreateProfile(ctx context.Context, userID, email string) (*profile.Profile, error) {
	query := `
	INSERT INTO users (user_id, email, timezone, reminder_h, reminder_m, pdf_on)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING user_id, email, timezone, reminder_h, reminder_m, pdf_on
	`

	p := &profile.Profile{}
	err := s.db.QueryRow(ctx, query,
		userID, email,
		profile.DefaultTimezone, profile.DefaultReminderH, profile.DefaultReminderM, false,
	).Scan(
		&p.UserID,
		&p.Email,
		&p.Timezone,
		&p.ReminderH,
		&p.ReminderM,
		&p.PdfOn,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return p, nil
}

// EnsureProfile provisions a profile row on first authenticated access.
func (s *ProfileService) EnsureProfile(ctx context.Context, userID, email string) (*profile.Profile, error) {
	p, err := s.GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}
	return s.CreateProfile(ctx, userID, email)
}

func (s *ProfileService) GetSettings(ctx context.Context, userID string) (*profile.Settings, error) {
	query := `
	SELECT user_id, timezone, reminder_h, reminder_m, pdf_on
	FROM users
	WHERE user_id = $1
	`

	settings := &profile.Settings{}
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&settings.UserID,
		&settings.Timezone,
		&settings.ReminderH,
		&settings.ReminderM,
		&settings.PdfOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

// UpdateSettings applies only the provided fields. The caller guarantees at
// least one field is set.
func (s *ProfileService) UpdateSettings(ctx context.Context, userID string, req *profile.UpdateSettingsRequest) (*profile.Settings, error) {
	set := []string{}
	args := []any{}

	if req.Timezone != nil {
		args = append(args, *req.Timezone)
		set = append(set, fmt.Sprintf("timezone = $%d", len(args)))
	}
	if req.ReminderH != nil {
		args = append(args, *req.ReminderH)
		set = append(set, fmt.Sprintf("reminder_h = $%d", len(args)))
	}
	if req.ReminderM != nil {
		args = append(args, *req.ReminderM)
		set = append(set, fmt.Sprintf("reminder_m = $%d", len(args)))
	}
	if req.PdfOn != nil {
		args = append(args, *req.PdfOn)
		set = append(set, fmt.Sprintf("pdf_on = $%d", len(args)))
	}

	args = append(args, userID)
	query := fmt.Sprintf(`
	UPDATE users
	SET %s
	WHERE user_id = $%d
	RETURNING user_id, timezone, reminder_h, reminder_m, pdf_on
	`, strings.Join(set, ", "), len(args))

	settings := &profile.Settings{}
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&settings.UserID,
		&settings.Timezone,
		&settings.ReminderH,
		&settings.ReminderM,
		&settings.PdfOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return settings, nil
}
