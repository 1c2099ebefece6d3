package gallery

import (
	"context"
	"fmt"

	"gingallery/models"
)

// Photo list slots on a category.
const (
	SlotBefore = "before"
	SlotAfter  = "after"
)

// PhotoStore is the document-store port the recorder depends on. Both
// mutations must be atomic at the document level and report whether the
// category matched, so existence is decided by the mutation itself and not
// by a racy read-then-write.
type PhotoStore interface {
	PushPhoto(ctx context.Context, categoryID, field string, photo models.Photo) (bool, error)
	PullPhoto(ctx context.Context, categoryID, field, photoID string) (bool, error)
}

// Recorder appends and removes photos on a category's ordered lists.
type Recorder struct {
	store PhotoStore
}

func NewRecorder(store PhotoStore) *Recorder {
	return &Recorder{store: store}
}

// Append adds the photo to the end of the slot's list.
func (r *Recorder) Append(ctx context.Context, categoryID, slot string, photo models.Photo) error {
	field, err := SlotField(slot)
	if err != nil {
		return err
	}
	matched, err := r.store.PushPhoto(ctx, categoryID, field, photo)
	if err != nil {
		return fmt.Errorf("appending photo: %w", err)
	}
	if !matched {
		return ErrCategoryNotFound
	}
	return nil
}

// Remove deletes the photo with the given id from the slot's list. Removing
// an id that is not there is a successful no-op; only a missing category is
// an error.
func (r *Recorder) Remove(ctx context.Context, categoryID, slot, photoID string) error {
	field, err := SlotField(slot)
	if err != nil {
		return err
	}
	matched, err := r.store.PullPhoto(ctx, categoryID, field, photoID)
	if err != nil {
		return fmt.Errorf("removing photo: %w", err)
	}
	if !matched {
		return ErrCategoryNotFound
	}
	return nil
}

// SlotField maps a slot name to the document array field backing it.
func SlotField(slot string) (string, error) {
	switch slot {
	case SlotBefore:
		return "photos_before", nil
	case SlotAfter:
		return "photos_after", nil
	}
	return "", &ValidationError{"photo_type must be 'before' or 'after'"}
}
