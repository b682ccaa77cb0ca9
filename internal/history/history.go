package history

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"motor-match/internal/motor/model"
)

// Store: история конверсий в памяти процесса. Один пользователь, без блокировок.
// Живёт один запуск: новые записи дают ID отчётам и на диск не пишутся.
type Store struct {
	entries []model.HistoryEntry
	limit   int
	now     func() time.Time
}

// New seeds the store (usually from the catalog's history list). limit <= 0 keeps everything.
func New(seed []model.HistoryEntry, limit int) *Store {
	s := &Store{limit: limit, now: time.Now}
	s.entries = append(s.entries, seed...)
	s.trim()
	return s
}

// Record adds a source → target conversion and returns the new entry.
func (s *Store) Record(sourceModel, targetModel string) model.HistoryEntry {
	e := model.HistoryEntry{
		ID:          uuid.NewString(),
		CreatedAt:   s.now().UTC(),
		SourceModel: sourceModel,
		TargetModel: targetModel,
	}
	s.entries = append(s.entries, e)
	s.trim()
	return e
}

// List returns entries newest first.
func (s *Store) List() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// старые записи вытесняются
func (s *Store) trim() {
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = append([]model.HistoryEntry(nil), s.entries[len(s.entries)-s.limit:]...)
	}
}
