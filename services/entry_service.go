package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"weekupAPI/internal/entry"
	"weekupAPI/internal/week"
)

var (
	ErrDuplicateEntry = errors.New("entry for this date already exists")
	ErrEntryNotFound  = errors.New("entry not found")
)

type EntryService struct {
	db *pgxpool.Pool
}

func NewEntryService(db *pgxpool.Pool) *EntryService {
	return &EntryService{db: db}
}

// CreateEntry inserts a new daily entry, enforcing one entry per user per day.
// The pre-insert check gives the friendly error; the unique index on
// (user_id, date) closes the race the check leaves open.
func (s *EntryService) CreateEntry(ctx context.Context, req *entry.CreateEntryRequest) (*entry.Entry, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM entries WHERE user_id = $1 AND date = $2)`,
		req.UserID, req.Date,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing entry: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEntry
	}

	e := &entry.Entry{
		EntryID: uuid.New().String(),
		UserID:  req.UserID,
		Text:    req.Text,
	}

	query := `
	INSERT INTO entries (entry_id, user_id, date, text)
	VALUES ($1, $2, $3, $4)
	RETURNING entry_id, user_id, date, text
	`

	var date time.Time
	err = s.db.QueryRow(ctx, query, e.EntryID, req.UserID, req.Date, req.Text).Scan(
		&e.EntryID,
		&e.UserID,
		&date,
		&e.Text,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	e.Date = date.Format(week.DateLayout)
	return e, nil
}

// ListEntries returns a user's entries, optionally bounded inclusively by
// start/end date, ordered ascending by date.
func (s *EntryService) ListEntries(ctx context.Context, userID, startDate, endDate string) ([]*entry.Entry, error) {
	query := `SELECT entry_id, user_id, date, text FROM entries WHERE user_id = $1`
	args := []any{userID}

	if startDate != "" {
		args = append(args, startDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if endDate != "" {
		args = append(args, endDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date ASC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	entries := []*entry.Entry{}
	for rows.Next() {
		e := &entry.Entry{}
		var date time.Time
		if err := rows.Scan(&e.EntryID, &e.UserID, &date, &e.Text); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Date = date.Format(week.DateLayout)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	return entries, nil
}

// UpdateEntryText replaces the text of an entry by id.
func (s *EntryService) UpdateEntryText(ctx context.Context, entryID, text string) (*entry.Entry, error) {
	query := `
	UPDATE entries
	SET text = $1
	WHERE entry_id = $2
	RETURNING entry_id, user_id, date, text
	`

	e := &entry.Entry{}
	var date time.Time
	err := s.db.QueryRow(ctx, query, text, entryID).Scan(&e.EntryID, &e.UserID, &date, &e.Text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	e.Date = date.Format(week.DateLayout)
	return e, nil
}

// WeeklyEntries builds the fixed Monday..Friday view for the week starting at
// weekStart. Days with no entry stay null.
func (s *EntryService) WeeklyEntries(ctx context.Context, userID string, weekStart time.Time) (*entry.WeeklyEntriesResponse, error) {
	weekEnd := week.End(weekStart)

	rows, err := s.db.Query(ctx,
		`SELECT date, text FROM entries WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC`,
		userID, weekStart.Format(week.DateLayout), weekEnd.Format(week.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly entries: %w", err)
	}
	defer rows.Close()

	byDay := week.EmptyWindow()
	for rows.Next() {
		var date time.Time
		var text string
		if err := rows.Scan(&date, &text); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		if day, ok := week.DayName(date, weekStart); ok {
			t := text
			byDay[day] = &t
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weekly entries: %w", err)
	}

	return &entry.WeeklyEntriesResponse{
		WeekStart: weekStart.Format(week.DateLayout),
		WeekEnd:   weekEnd.Format(week.DateLayout),
		Entries:   byDay,
	}, nil
}
