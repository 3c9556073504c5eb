package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sadopc/tagzi/internal/ledger"
)

// dayKeyPrefix namespaces day entries within the entries table.
const dayKeyPrefix = "tagzi:day_"

// DayKey returns the storage key of date.
func DayKey(date ledger.Date) string {
	return dayKeyPrefix + string(date)
}

// ParseDayKey extracts the date from a day key. ok is false for keys outside
// the day namespace or with a malformed date suffix.
func ParseDayKey(key string) (ledger.Date, bool) {
	rest, ok := strings.CutPrefix(key, dayKeyPrefix)
	if !ok {
		return "", false
	}
	date, err := ledger.ParseDate(rest)
	if err != nil {
		return "", false
	}
	return date, string(date) == rest
}

func encodeDay(rec ledger.DayRecord) (string, error) {
	data, err := json.Marshal(rec.Clone())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeDay(date ledger.Date, value string) (ledger.DayRecord, error) {
	var rec ledger.DayRecord
	if err := json.Unmarshal([]byte(value), &rec); err != nil {
		return ledger.DayRecord{}, err
	}
	rec.Date = date
	return rec, nil
}

// LoadDay returns the record stored for date. ok is false when nothing is
// stored, which callers treat as the default record.
func (s *Store) LoadDay(ctx context.Context, date ledger.Date) (ledger.DayRecord, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM entries WHERE key = ?`, DayKey(date)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.DayRecord{}, false, nil
	}
	if err != nil {
		return ledger.DayRecord{}, false, ioErr("load day "+string(date), err)
	}

	rec, err := decodeDay(date, value)
	if err != nil {
		return ledger.DayRecord{}, false, fmt.Errorf("load day %s: %w: %w", date, ErrCorrupt, err)
	}
	return rec, true, nil
}

// SaveDay overwrites the whole record stored for date.
func (s *Store) SaveDay(ctx context.Context, date ledger.Date, rec ledger.DayRecord) error {
	rec.Date = date
	value, err := encodeDay(rec)
	if err != nil {
		return fmt.Errorf("encode day %s: %w", date, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO entries (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		DayKey(date), value, now,
	)
	if err != nil {
		return ioErr("save day "+string(date), err)
	}
	return nil
}

// ListDays returns every stored day in key order. Entries whose key or value
// cannot be parsed are skipped so one bad day never hides the rest.
func (s *Store) ListDays(ctx context.Context) ([]ledger.DayRecord, error) {
	pattern := strings.ReplaceAll(dayKeyPrefix, "_", `\_`) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM entries WHERE key LIKE ? ESCAPE '\' ORDER BY key`, pattern,
	)
	if err != nil {
		return nil, ioErr("list days", err)
	}
	defer rows.Close()

	var days []ledger.DayRecord
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, ioErr("scan day", err)
		}
		date, ok := ParseDayKey(key)
		if !ok {
			s.log.Warn("skipping day with malformed key", zap.String("key", key))
			continue
		}
		rec, err := decodeDay(date, value)
		if err != nil {
			s.log.Warn("skipping corrupt day", zap.String("date", string(date)), zap.Error(err))
			continue
		}
		days = append(days, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, ioErr("list days", err)
	}
	return days, nil
}

// DeleteDay permanently removes date. Deleting a missing day succeeds.
func (s *Store) DeleteDay(ctx context.Context, date ledger.Date) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, DayKey(date)); err != nil {
		return ioErr("delete day "+string(date), err)
	}
	return nil
}
