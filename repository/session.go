package repository

import (
	"cmp"
	"context"
	"slices"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/store"
)

// SessionRepository manages focus sessions.
type SessionRepository struct {
	repo listRepo[models.FocusSession]
}

func NewSessionRepository(db *store.Client) *SessionRepository {
	return &SessionRepository{
		repo: listRepo[models.FocusSession]{
			db:         db,
			key:        store.KeyFocusSessions,
			counterKey: store.KeyNextSessionID,
			getID: func(s models.FocusSession) int {
				return s.ID
			},
			setID: func(s models.FocusSession, id int) models.FocusSession {
				s.ID = id
				return s
			},
		},
	}
}

// GetAll streams the stored sessions, re-emitting them whenever they change,
// until ctx is done.
func (r *SessionRepository) GetAll(ctx context.Context) <-chan []models.FocusSession {
	return r.repo.watch(ctx)
}

// List returns the stored sessions, most recently started first.
func (r *SessionRepository) List() ([]models.FocusSession, error) {
	list, err := r.repo.all()
	if err != nil {
		return nil, err
	}

	sortByStart(list)

	return list, nil
}

func (r *SessionRepository) Insert(
	s models.FocusSession,
) (models.FocusSession, error) {
	return r.repo.insert(s)
}

// Update replaces the stored session that has the same id as s. It does
// nothing if there is no such session.
func (r *SessionRepository) Update(s models.FocusSession) error {
	return r.repo.replace(s)
}

func (r *SessionRepository) Delete(id int) error {
	return r.repo.delete(id)
}

// ByFocusID returns the sessions run against the given focus model.
func (r *SessionRepository) ByFocusID(focusID int) ([]models.FocusSession, error) {
	list, err := r.repo.all()
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(list, func(s models.FocusSession) bool {
		return s.FocusID != focusID
	}), nil
}

// HistoryEntry is a session paired with the focus model it was run against.
// Focus is nil if the model has since been deleted.
type HistoryEntry struct {
	Focus   *models.FocusModel
	Session models.FocusSession
}

// History pairs each session with its focus model, most recently started
// first.
func History(
	sessions []models.FocusSession,
	focusModels []models.FocusModel,
) []HistoryEntry {
	byID := make(map[int]*models.FocusModel, len(focusModels))

	for i := range focusModels {
		byID[focusModels[i].ID] = &focusModels[i]
	}

	sorted := slices.Clone(sessions)
	sortByStart(sorted)

	entries := make([]HistoryEntry, len(sorted))

	for i := range sorted {
		entries[i] = HistoryEntry{
			Session: sorted[i],
			Focus:   byID[sorted[i].FocusID],
		}
	}

	return entries
}

func sortByStart(list []models.FocusSession) {
	slices.SortStableFunc(list, func(a, b models.FocusSession) int {
		return cmp.Compare(b.StartTime, a.StartTime)
	})
}
