package repository

import (
	"cmp"
	"context"
	"slices"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/store"
)

// FocusRepository manages focus models.
type FocusRepository struct {
	repo listRepo[models.FocusModel]
}

func NewFocusRepository(db *store.Client) *FocusRepository {
	return &FocusRepository{
		repo: listRepo[models.FocusModel]{
			db:         db,
			key:        store.KeyFocusModels,
			counterKey: store.KeyNextFocusID,
			getID: func(m models.FocusModel) int {
				return m.ID
			},
			setID: func(m models.FocusModel, id int) models.FocusModel {
				m.ID = id
				return m
			},
		},
	}
}

// GetAll streams the stored focus models, re-emitting them whenever they
// change, until ctx is done.
func (r *FocusRepository) GetAll(ctx context.Context) <-chan []models.FocusModel {
	return r.repo.watch(ctx)
}

// List returns the stored focus models, most recently created first.
func (r *FocusRepository) List() ([]models.FocusModel, error) {
	list, err := r.repo.all()
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(list, func(a, b models.FocusModel) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})

	return list, nil
}

// Insert stores m under a newly allocated id and returns the stored copy.
func (r *FocusRepository) Insert(m models.FocusModel) (models.FocusModel, error) {
	return r.repo.insert(m)
}

// Update replaces the stored focus model that has the same id as m. It does
// nothing if there is no such model.
func (r *FocusRepository) Update(m models.FocusModel) error {
	return r.repo.replace(m)
}

func (r *FocusRepository) Delete(id int) error {
	return r.repo.delete(id)
}

func (r *FocusRepository) GetByID(id int) (models.FocusModel, bool, error) {
	return r.repo.find(id)
}

// RecordCompletion counts one more completed session for the focus model
// with the given id and marks it completed once its target is reached.
func (r *FocusRepository) RecordCompletion(id int) (models.FocusModel, error) {
	m, ok, err := r.repo.modify(id, models.FocusModel.Complete)
	if err != nil {
		return m, err
	}

	if !ok {
		return m, errFocusNotFound.Fmt(id)
	}

	return m, nil
}

// Counts returns the number of stored focus models and how many of them are
// completed.
func (r *FocusRepository) Counts() (used, done int, err error) {
	list, err := r.repo.all()
	if err != nil {
		return 0, 0, err
	}

	for i := range list {
		if list[i].IsCompleted {
			done++
		}
	}

	return len(list), done, nil
}
