package repository

import (
	"context"

	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/store"
)

// CategoryRepository manages focus categories. Category ids are one more
// than the largest stored id; names are not deduplicated here.
type CategoryRepository struct {
	repo listRepo[models.Category]
}

func NewCategoryRepository(db *store.Client) *CategoryRepository {
	return &CategoryRepository{
		repo: listRepo[models.Category]{
			db:  db,
			key: store.KeyCategories,
			getID: func(c models.Category) int {
				return c.ID
			},
			setID: func(c models.Category, id int) models.Category {
				c.ID = id
				return c
			},
		},
	}
}

func (r *CategoryRepository) GetAll(ctx context.Context) <-chan []models.Category {
	return r.repo.watch(ctx)
}

func (r *CategoryRepository) List() ([]models.Category, error) {
	return r.repo.all()
}

// Insert stores a new category called name.
func (r *CategoryRepository) Insert(name string) (models.Category, error) {
	return r.repo.insert(models.Category{Name: name})
}

func (r *CategoryRepository) Delete(id int) error {
	return r.repo.delete(id)
}
