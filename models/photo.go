package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is one stored image inside a category's before/after list.
// FileURL is always set. TelegramFileID is only set when the photo went
// through the real Telegram backend; mock uploads leave it with a synthetic
// value and an inline data URL.
type Photo struct {
	ID                   string    `json:"id" bson:"id"`
	TelegramFileID       string    `json:"telegram_file_id,omitempty" bson:"telegram_file_id,omitempty"`
	TelegramFileUniqueID string    `json:"telegram_file_unique_id,omitempty" bson:"telegram_file_unique_id,omitempty"`
	FileURL              string    `json:"file_url" bson:"file_url"`
	FileSize             int       `json:"file_size,omitempty" bson:"file_size,omitempty"`
	MimeType             string    `json:"mime_type,omitempty" bson:"mime_type,omitempty"`
	UploadedAt           time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

func NewPhoto(fileURL, fileID, fileUniqueID string, size int, mimeType string) Photo {
	return Photo{
		ID:                   uuid.NewString(),
		TelegramFileID:       fileID,
		TelegramFileUniqueID: fileUniqueID,
		FileURL:              fileURL,
		FileSize:             size,
		MimeType:             mimeType,
		UploadedAt:           time.Now().UTC(),
	}
}

// UploadResponse is the envelope returned by the photo upload endpoints.
type UploadResponse struct {
	Success bool   `json:"success"`
	Photo   *Photo `json:"photo"`
	Message string `json:"message"`
}
