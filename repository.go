package prysm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/etnz/prysm/store"
	"github.com/rs/zerolog"
)

// Keys of the persisted snapshot.
const (
	KeyData      = "portfolio-data"
	KeyTimestamp = "portfolio-timestamp"
	KeyVersion   = "portfolio-version"
)

// FormatVersion is the version marker written with each snapshot.
const FormatVersion = "1.0"

// StaleAfter is the age after which a loaded snapshot is reported as stale.
const StaleAfter = 30 * 24 * time.Hour

// Repository persists a single PortfolioData in a key-value store.
type Repository struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
}

// NewRepository returns a repository saving into s.
func NewRepository(s store.Store, logger zerolog.Logger) *Repository {
	return &Repository{store: s, log: logger, now: time.Now}
}

// Loaded is the result of [Repository.Load].
type Loaded struct {
	Data    *PortfolioData // nil when nothing is saved
	SavedAt time.Time      // zero if the timestamp is missing or unreadable
	Version string
	// Stale is true when the data was saved more than StaleAfter ago. It is a
	// warning for the user, the data is still valid.
	Stale bool
}

// Save replaces the saved snapshot with data.
func (r *Repository) Save(ctx context.Context, data *PortfolioData) error {
	if data == nil || data.Trades == nil || data.Holdings == nil {
		return &StorageError{Op: OpSave, Msg: "invalid portfolio data structure"}
	}
	serialized, err := json.Marshal(data)
	if err != nil {
		return &StorageError{Op: OpSave, Msg: "cannot serialize portfolio data", Err: err}
	}

	entries := []struct{ key, value string }{
		{KeyData, string(serialized)},
		{KeyTimestamp, r.now().UTC().Format(time.RFC3339)},
		{KeyVersion, FormatVersion},
	}
	for _, e := range entries {
		if err := r.store.Set(ctx, e.key, e.value); err != nil {
			if errors.Is(err, store.ErrQuotaExceeded) {
				return &StorageError{Op: OpSave, Msg: "storage quota exceeded, please clear some data", Err: err}
			}
			return &StorageError{Op: OpSave, Msg: "cannot write " + e.key, Err: err}
		}
	}

	if _, ok, err := r.store.Get(ctx, KeyData); err != nil || !ok {
		return &StorageError{Op: OpSave, Msg: "failed to verify data was saved", Err: err}
	}
	r.log.Debug().Int("trades", len(data.Trades)).Int("holdings", len(data.Holdings)).Int("bytes", len(serialized)).Msg("portfolio data saved")
	return nil
}

// Load reads the saved snapshot. It returns a zero Loaded and no error when
// nothing is saved. Malformed data is an error, it is never silently reset.
func (r *Repository) Load(ctx context.Context) (Loaded, error) {
	raw, ok, err := r.store.Get(ctx, KeyData)
	if err != nil {
		return Loaded{}, &StorageError{Op: OpLoad, Msg: "cannot read portfolio data", Err: err}
	}
	if !ok {
		return Loaded{}, nil
	}
	if err := checkShape([]byte(raw)); err != nil {
		return Loaded{}, err
	}
	var data PortfolioData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return Loaded{}, &StorageError{Op: OpLoad, Msg: "invalid portfolio data in storage", Err: err}
	}

	res := Loaded{Data: &data}
	if v, ok, err := r.store.Get(ctx, KeyVersion); err == nil && ok {
		res.Version = v
	}
	if ts, ok, err := r.store.Get(ctx, KeyTimestamp); err == nil && ok {
		if savedAt, err := time.Parse(time.RFC3339, ts); err == nil {
			res.SavedAt = savedAt
			age := r.now().Sub(savedAt)
			if age > StaleAfter {
				res.Stale = true
				r.log.Warn().Time("saved_at", savedAt).Dur("age", age).Msg("portfolio data is more than 30 days old")
			}
		} else {
			r.log.Warn().Str("timestamp", ts).Err(err).Msg("ignoring unreadable portfolio timestamp")
		}
	}
	return res, nil
}

// Clear removes the saved snapshot.
func (r *Repository) Clear(ctx context.Context) error {
	for _, key := range []string{KeyData, KeyTimestamp, KeyVersion} {
		if err := r.store.Remove(ctx, key); err != nil {
			return &StorageError{Op: OpClear, Msg: "cannot remove " + key, Err: err}
		}
	}
	r.log.Debug().Msg("portfolio data cleared")
	return nil
}

// checkShape validates the top level structure of a serialized snapshot.
func checkShape(raw []byte) error {
	if !json.Valid(raw) {
		return &StorageError{Op: OpLoad, Msg: "corrupted data in storage"}
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		return &StorageError{Op: OpLoad, Msg: "invalid data format in storage"}
	}
	if !isJSON(top["trades"], '[') {
		return &StorageError{Op: OpLoad, Msg: "invalid trades data in storage"}
	}
	if !isJSON(top["holdings"], '[') {
		return &StorageError{Op: OpLoad, Msg: "invalid holdings data in storage"}
	}
	if !isJSON(top["metrics"], '{') {
		return &StorageError{Op: OpLoad, Msg: "invalid metrics data in storage"}
	}
	return nil
}

// isJSON reports whether the raw value starts with the given delimiter.
func isJSON(raw json.RawMessage, delim byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b == delim
	}
	return false
}
