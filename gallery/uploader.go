package gallery

import (
	"context"
	"log"

	"gingallery/models"
	"gingallery/storage"
)

// Uploader runs the full ingestion pipeline: validate, normalize to PNG,
// push to the storage backend, record the resulting photo on the category.
// A photo is only recorded after storage fully succeeded; every earlier
// failure leaves the category untouched.
type Uploader struct {
	backend  storage.Backend
	recorder *Recorder
}

func NewUploader(backend storage.Backend, recorder *Recorder) *Uploader {
	return &Uploader{backend: backend, recorder: recorder}
}

func (u *Uploader) Upload(ctx context.Context, categoryID, slot string, content []byte, filename, contentType string) (*models.Photo, error) {
	if _, err := SlotField(slot); err != nil {
		return nil, err
	}
	if err := Validate(filename, contentType); err != nil {
		return nil, err
	}
	if _, err := ValidateUpload(content, filename, contentType); err != nil {
		return nil, err
	}

	normalized, err := Normalize(content)
	if err != nil {
		return nil, err
	}

	// Normalize re-encoded to PNG, so that is the only type we declare.
	result, err := u.backend.Upload(ctx, normalized, filename, "image/png")
	if err != nil {
		return nil, err
	}

	photo := models.NewPhoto(result.URL, result.FileID, result.FileUniqueID, result.Size, result.MimeType)
	if err := u.recorder.Append(ctx, categoryID, slot, photo); err != nil {
		return nil, err
	}

	log.Printf("uploaded photo %s to category %s (%s)", photo.ID, categoryID, slot)
	return &photo, nil
}
