package repository

import (
	"context"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/store"
)

// SoundRepository exposes the ambient sounds available to sessions.
type SoundRepository struct {
	repo listRepo[models.AmbientSound]
}

func NewSoundRepository(db *store.Client) *SoundRepository {
	return &SoundRepository{
		repo: listRepo[models.AmbientSound]{
			db:  db,
			key: store.KeyAmbientSounds,
			getID: func(s models.AmbientSound) int {
				return s.ID
			},
		},
	}
}

func (r *SoundRepository) GetAll(ctx context.Context) <-chan []models.AmbientSound {
	return r.repo.watch(ctx)
}

func (r *SoundRepository) List() ([]models.AmbientSound, error) {
	return r.repo.all()
}

func (r *SoundRepository) GetByID(id int) (models.AmbientSound, bool, error) {
	return r.repo.find(id)
}
