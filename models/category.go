package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups photos into two independently ordered lists: the ones
// shown before accepting and the ones shown in the gallery after.
type Category struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	PhotosBefore []Photo   `json:"photos_before" bson:"photos_before"`
	PhotosAfter  []Photo   `json:"photos_after" bson:"photos_after"`
	Sentences    []string  `json:"sentences" bson:"sentences"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

type CategoryCreate struct {
	Name      string   `json:"name" validate:"required"`
	Sentences []string `json:"sentences"`
}

// CategoryUpdate carries only the fields the caller wants changed.
type CategoryUpdate struct {
	Name      *string   `json:"name,omitempty"`
	Sentences *[]string `json:"sentences,omitempty"`
}

func NewCategory(name string, sentences []string) Category {
	if sentences == nil {
		sentences = []string{}
	}
	return Category{
		ID:           uuid.NewString(),
		Name:         name,
		PhotosBefore: []Photo{},
		PhotosAfter:  []Photo{},
		Sentences:    sentences,
		CreatedAt:    time.Now().UTC(),
	}
}
