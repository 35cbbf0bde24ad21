package store

import "github.com/ayoisaiah/focusflow/internal/models"

// DefaultCategories is the category list used when none is stored.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Study"},
		{ID: 2, Name: "Work"},
		{ID: 3, Name: "Reading"},
		{ID: 4, Name: "Exercise"},
		{ID: 5, Name: "Meditation"},
	}
}

// DefaultAmbientSounds is the sound list used when none is stored.
func DefaultAmbientSounds() []models.AmbientSound {
	return []models.AmbientSound{
		{ID: 1, Name: "Rain", FileURL: "rain.mp3"},
		{ID: 2, Name: "Forest", FileURL: "forest.mp3"},
		{ID: 3, Name: "Ocean", FileURL: "ocean.mp3"},
		{ID: 4, Name: "White Noise", FileURL: "whitenoise.mp3"},
		{ID: 5, Name: "No Sound", FileURL: ""},
	}
}

func defaultList[T any](key string) []T {
	var seed any

	switch key {
	case KeyCategories:
		seed = DefaultCategories()
	case KeyAmbientSounds:
		seed = DefaultAmbientSounds()
	}

	if list, ok := seed.([]T); ok {
		return list
	}

	return []T{}
}
